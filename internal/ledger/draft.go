package ledger

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/datatypes"

	"github.com/bburrets/mdf-contract-management/internal/audit"
	"github.com/bburrets/mdf-contract-management/internal/domain"
	"github.com/bburrets/mdf-contract-management/internal/logger"
	"github.com/bburrets/mdf-contract-management/internal/store"
	"github.com/bburrets/mdf-contract-management/internal/store/schema"
)

// validateForm reports the field errors of a stored contract form. A form that does not decode
// is still a valid draft; it is reported under form_data.
func (s *service) validateForm(ctx context.Context, raw json.RawMessage) (domain.ValidationErrors, error) {
	var form ContractForm
	if err := s.json.Unmarshal(raw, &form); err != nil {
		return domain.ValidationErrors{"form_data": "is not a complete contract form"}, nil
	}

	input, verrs := form.Input()
	contractErrs, err := s.validateContract(ctx, input)
	if err != nil {
		return nil, err
	}
	verrs.Merge(contractErrs)

	return verrs, nil
}

func toJSONMap(verrs domain.ValidationErrors) datatypes.JSONMap {
	if len(verrs) == 0 {
		return nil
	}
	m := make(datatypes.JSONMap, len(verrs))
	for field, message := range verrs {
		m[field] = message
	}
	return m
}

func (s *service) SaveDraft(ctx context.Context, actor string, input SaveDraftInput) (result *DraftSaveResult, err error) {
	defer s.track("save_draft", s.clock.Now(), &err)

	if actor == "" {
		return nil, domain.ErrActorRequired
	}

	raw := bytes.TrimSpace(input.FormData)
	switch {
	case len(raw) == 0 || bytes.Equal(raw, []byte("null")):
		return nil, domain.ValidationErrors{"form_data": "is required"}
	case !json.Valid(raw):
		return nil, domain.ValidationErrors{"form_data": "must be valid JSON"}
	}

	formErrs, err := s.validateForm(ctx, raw)
	if err != nil {
		return nil, err
	}

	result = &DraftSaveResult{ValidationErrors: formErrs}
	err = s.store.RunAtomic(ctx, func(tx store.Store) error {
		var (
			draft    *schema.ContractDraft
			replaced int64
		)

		if input.DraftID != nil {
			existing, err := tx.GetDraftByID(ctx, *input.DraftID)
			if err != nil {
				return err
			}
			if existing == nil || existing.ActorID != actor {
				return fmt.Errorf("draft %d: %w", *input.DraftID, domain.ErrDraftNotFound)
			}
			existing.FormData = datatypes.JSON(raw)
			existing.ValidationErrors = toJSONMap(formErrs)
			if err := tx.UpdateDraft(ctx, existing); err != nil {
				return err
			}
			draft = existing
		} else {
			n, err := tx.DeleteDraftsByActor(ctx, actor, nil)
			if err != nil {
				return err
			}
			replaced = n

			draft = &schema.ContractDraft{
				ActorID:          actor,
				ContractID:       input.ContractID,
				FormData:         datatypes.JSON(raw),
				ValidationErrors: toJSONMap(formErrs),
			}
			if err := tx.CreateDraft(ctx, draft); err != nil {
				return err
			}
			result.Created = true
		}

		s.recorder.Record(ctx, tx, audit.Entry{
			ContractID: draft.ContractID,
			DraftID:    &draft.ID,
			ActorID:    actor,
			Payload: audit.DraftSaved{
				DraftID:          draft.ID,
				Created:          result.Created,
				ReplacedDrafts:   replaced,
				ValidationErrors: formErrs,
			},
		})

		result.Draft = draft
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to save draft: %w", err)
	}

	logger.DebugCtx(ctx, "Draft saved",
		zap.Int64("draft_id", result.Draft.ID),
		zap.Bool("created", result.Created),
		zap.Int("validation_errors", len(formErrs)),
		zap.String("actor", actor))

	return result, nil
}

func (s *service) ResumeDraft(ctx context.Context, actor string) (draft *schema.ContractDraft, err error) {
	defer s.track("resume_draft", s.clock.Now(), &err)

	if actor == "" {
		return nil, domain.ErrActorRequired
	}

	draft, err = s.store.GetLatestDraftByActor(ctx, actor)
	if err != nil {
		return nil, err
	}
	if draft == nil {
		return nil, domain.ErrDraftNotFound
	}

	s.recorder.Record(ctx, nil, audit.Entry{
		ContractID: draft.ContractID,
		DraftID:    &draft.ID,
		ActorID:    actor,
		Payload: audit.DraftResumed{
			DraftID:   draft.ID,
			LastSaved: draft.LastSaved,
		},
	})

	return draft, nil
}

func (s *service) DeleteDraft(ctx context.Context, id int64, actor string) (err error) {
	defer s.track("delete_draft", s.clock.Now(), &err)

	if actor == "" {
		return domain.ErrActorRequired
	}

	err = s.store.RunAtomic(ctx, func(tx store.Store) error {
		draft, err := tx.GetDraftByID(ctx, id)
		if err != nil {
			return err
		}
		if draft == nil || draft.ActorID != actor {
			return fmt.Errorf("draft %d: %w", id, domain.ErrDraftNotFound)
		}

		deleted, err := tx.DeleteDraft(ctx, id)
		if err != nil {
			return err
		}
		if !deleted {
			return fmt.Errorf("draft %d: %w", id, domain.ErrDraftNotFound)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to delete draft %d: %w", id, err)
	}
	return nil
}

func (s *service) CleanupDrafts(ctx context.Context, actor string) (removed int64, err error) {
	defer s.track("cleanup_drafts", s.clock.Now(), &err)

	if actor == "" {
		return 0, domain.ErrActorRequired
	}

	err = s.store.RunAtomic(ctx, func(tx store.Store) error {
		latest, err := tx.GetLatestDraftByActor(ctx, actor)
		if err != nil {
			return err
		}
		if latest == nil {
			return nil
		}

		removed, err = tx.DeleteDraftsByActor(ctx, actor, &latest.ID)
		return err
	})
	if err != nil {
		return 0, fmt.Errorf("failed to clean up drafts: %w", err)
	}

	if removed > 0 {
		logger.InfoCtx(ctx, "Drafts cleaned up", zap.Int64("removed", removed), zap.String("actor", actor))
	}
	return removed, nil
}
