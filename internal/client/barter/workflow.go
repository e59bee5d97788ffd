// Package barter submits barter-session requests and keeps the local match
// list consistent with the outcome.
package barter

import (
	"context"
	"errors"

	"github.com/Pranavrh53/skill-exchange-platform/internal/client/api"
	"github.com/Pranavrh53/skill-exchange-platform/internal/client/matches"
	"github.com/Pranavrh53/skill-exchange-platform/internal/client/models"
	"github.com/Pranavrh53/skill-exchange-platform/internal/logging"
)

// Initiator is the slice of the API gateway the workflow needs.
type Initiator interface {
	InitiateBarter(ctx context.Context, req models.BarterRequest) error
}

// CandidateRemover is what the workflow needs from the match engine.
type CandidateRemover interface {
	RemoveCandidate(userID string)
}

// Workflow turns a chosen candidate and skill pair into a barter request.
type Workflow struct {
	gw     Initiator
	engine CandidateRemover
	expiry matches.ExpiryHandler
	log    logging.Logger
}

func NewWorkflow(gw Initiator, engine CandidateRemover, expiry matches.ExpiryHandler, log logging.Logger) *Workflow {
	return &Workflow{
		gw:     gw,
		engine: engine,
		expiry: expiry,
		log:    log.With("component", "barter"),
	}
}

// Initiate asks the backend to open a barter session with the candidate:
// the caller gives offeredSkillID and gets requestedSkillID in return. On
// success the candidate is removed from the local match list; the backend
// owns the created session, nothing is persisted client-side. On failure
// the list is untouched and the error is returned for display. Racing
// initiations against the same candidate are safe: removal is idempotent
// and the backend rejects duplicates with a validation error.
func (w *Workflow) Initiate(ctx context.Context, candidate models.Candidate, offeredSkillID, requestedSkillID string) error {
	req := models.BarterRequest{
		ProviderID:       candidate.User.ID.String(),
		OfferedSkillID:   offeredSkillID,
		RequestedSkillID: requestedSkillID,
	}

	err := w.gw.InitiateBarter(ctx, req)
	if err != nil {
		if errors.Is(err, api.ErrAuthExpired) {
			w.expiry.OnAuthExpired(ctx)
			return err
		}
		w.log.Warn(ctx, "barter initiation failed", "provider_id", req.ProviderID, "err", err)
		return err
	}

	w.engine.RemoveCandidate(req.ProviderID)
	w.log.Info(ctx, "barter session initiated",
		"provider_id", req.ProviderID,
		"offered_skill_id", offeredSkillID,
		"requested_skill_id", requestedSkillID)
	return nil
}
