package play

import (
	"github.com/abhisek/probace/internal/question"
	"github.com/abhisek/probace/internal/questiongen"
)

// questionReadyMsg is sent when the provisioning service returns. Round
// identifies the load it answers so late arrivals can be dropped.
type questionReadyMsg struct {
	Round    int
	Question *question.ProbabilityQuestion
	Source   questiongen.Source
	Reason   string
}
