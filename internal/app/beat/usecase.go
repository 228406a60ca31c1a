package beat

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"storyforge/internal/app/action"
	"storyforge/internal/app/ports"
	"storyforge/internal/domain/story"
)

var ErrInvalidRequest = errors.New("invalid beat request")

// UseCase records the staff-written resolution batches that close out a
// round of actions on a plot.
type UseCase struct {
	TxManager ports.TxManager
	Actions   ports.ActionRepository
	Plots     ports.PlotRepository
	Beats     ports.BeatRepository
	Episodes  ports.EpisodeDirectory
	Publisher action.UseCase
	Notifier  ports.NotificationSink
	Now       func() time.Time
}

func (u UseCase) now() time.Time {
	if u.Now != nil {
		return u.Now()
	}
	return time.Now()
}

// Create writes the batch, then flushes the plot's resolved actions into it.
// Parked actions publish through the action use case so their own locking and
// notification rules apply; already-published ones just get back-linked.
func (u UseCase) Create(ctx context.Context, req CreateRequest) (CreateResponse, error) {
	if req.PlotID == "" || req.Summary == "" {
		return CreateResponse{}, ErrInvalidRequest
	}

	b := story.Beat{
		ID:        uuid.NewString(),
		PlotID:    req.PlotID,
		Summary:   req.Summary,
		StaffNote: req.StaffNote,
		CreatedAt: u.now(),
	}

	var pending []story.Action
	err := u.TxManager.RunInTx(ctx, func(txCtx context.Context) error {
		if _, err := u.Plots.GetByID(txCtx, req.PlotID); err != nil {
			return err
		}
		episodeID, err := u.Episodes.CurrentEpisode(txCtx)
		if err != nil {
			return err
		}
		b.EpisodeID = episodeID
		if err := u.Beats.Create(txCtx, b); err != nil {
			return err
		}
		pending, err = u.Actions.ListResolvedWithoutBeat(txCtx, req.PlotID)
		return err
	})
	if err != nil {
		return CreateResponse{}, err
	}

	// Each flush runs under the action's own lock and transaction; a failure
	// on one action leaves the beat and the others intact.
	resp := CreateResponse{BeatID: b.ID}
	var failed []string
	for i := range pending {
		a := &pending[i]
		if a.Status == story.StatusPendingPublish {
			_, err := u.Publisher.Publish(ctx, action.PublishRequest{
				ActionID: a.ID,
				Outcome:  a.Outcome,
				BeatID:   b.ID,
			})
			if err != nil {
				failed = append(failed, a.ID)
				continue
			}
			resp.Published = append(resp.Published, a.ID)
			continue
		}
		if err := u.Publisher.LinkBeat(ctx, a.ID, b.ID); err != nil {
			failed = append(failed, a.ID)
			continue
		}
		resp.Linked = append(resp.Linked, a.ID)
	}

	if u.Notifier != nil {
		msg := fmt.Sprintf("Beat %s created on plot %s.", b.ID, req.PlotID)
		if len(resp.Published) > 0 {
			msg += fmt.Sprintf(" Published: %s.", strings.Join(resp.Published, ", "))
		}
		if len(resp.Linked) > 0 {
			msg += fmt.Sprintf(" Linked: %s.", strings.Join(resp.Linked, ", "))
		}
		if len(failed) > 0 {
			msg += fmt.Sprintf(" Failed to attach: %s.", strings.Join(failed, ", "))
		}
		u.Notifier.NotifyStaff(ctx, msg)
	}
	return resp, nil
}
