package console

import (
	"github.com/topiclens/topiclens/internal/domain"
)

const msgNoClusterSelected = "No cluster selected"

// Console runs the interactive topic-lifecycle flows against the currently
// selected cluster. It holds no per-command state; every flow resolves its
// client and topic from scratch.
type Console struct {
	repo      domain.ClusterRepository
	prompter  Prompter
	presenter Presenter
	surfaces  Surfaces
	explorer  Explorer
}

// New creates a console wired to the given collaborators.
func New(repo domain.ClusterRepository, prompter Prompter, presenter Presenter, surfaces Surfaces, explorer Explorer) *Console {
	return &Console{
		repo:      repo,
		prompter:  prompter,
		presenter: presenter,
		surfaces:  surfaces,
		explorer:  explorer,
	}
}
