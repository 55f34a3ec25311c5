// Package usecase runs the follow-up pipeline: fetch transcript, analyze,
// then fan out into four independent branches (own tasks, participant tasks,
// notifications, follow-up meeting).
package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/meetflow/followup/pkg/gen"
	"github.com/meetflow/followup/services/followup/analysis"
	"github.com/meetflow/followup/services/followup/entity"
	"github.com/meetflow/followup/services/followup/notify"
	"github.com/meetflow/followup/services/followup/scheduler"
	"github.com/meetflow/followup/services/followup/taskstore"
	"github.com/meetflow/followup/services/followup/transcript"
)

// Branch names reported in RunResult errors.
const (
	BranchOwnTasks    = "own_tasks"
	BranchParticipant = "participant_tasks"
	BranchNotify      = "notify"
	BranchFollowUp    = "follow_up"
)

const defaultNotifyMessage = "You have new updates from the meeting."

type Usecase struct {
	transcripts transcript.Provider
	engine      analysis.Engine
	tasks       taskstore.Store
	notifier    notify.Notifier
	scheduler   scheduler.Scheduler
	runIDs      gen.RunIDGenerator
	log         *slog.Logger
}

func New(
	transcripts transcript.Provider,
	engine analysis.Engine,
	tasks taskstore.Store,
	notifier notify.Notifier,
	sched scheduler.Scheduler,
	log *slog.Logger,
) *Usecase {
	return &Usecase{
		transcripts: transcripts,
		engine:      engine,
		tasks:       tasks,
		notifier:    notifier,
		scheduler:   sched,
		runIDs:      gen.RunID(),
		log:         log,
	}
}

// ProcessMeeting runs the whole pipeline for one meeting. Transcript fetch
// and analysis are fatal stages: their failure aborts the run before any side
// effect. Failures inside a post-analysis branch are contained to that branch
// and reported in the result; the remaining branches always run.
func (u *Usecase) ProcessMeeting(ctx context.Context, meetingID string) (*entity.RunResult, error) {
	runID := u.runIDs.Next()
	log := u.log.With(slog.String("run_id", runID), slog.String("meeting_id", meetingID))
	log.Info("processing meeting")

	t, err := u.transcripts.Fetch(ctx, meetingID)
	if err != nil {
		log.Error("transcript fetch failed", slog.String("error", err.Error()))
		return nil, fmt.Errorf("fetch transcript: %w", err)
	}
	log.Info("transcript fetched",
		slog.String("title", t.Title),
		slog.Int("participants", len(t.Participants)),
		slog.Int("sentences", len(t.Sentences)))

	a, err := u.engine.Analyze(ctx, t)
	if err != nil {
		log.Error("analysis failed", slog.String("error", err.Error()))
		return nil, fmt.Errorf("analyze transcript: %w", err)
	}
	log.Info("transcript analyzed",
		slog.Int("tasks_for_me", len(a.TasksForMe)),
		slog.Int("participant_groups", len(a.ParticipantTasks)),
		slog.Int("notify_items", len(a.NotifyItems)))

	result := &entity.RunResult{
		RunID:     runID,
		MeetingID: meetingID,
	}

	u.runOwnTasks(ctx, log, a, result)
	u.runParticipantTasks(ctx, log, t, a, result)
	u.runNotifications(ctx, log, t, a, result)
	u.runFollowUp(ctx, log, t, a, result)

	log.Info("run complete",
		slog.Int("own_tasks_created", len(result.TasksCreatedForMe)),
		slog.Int("participant_notifications", len(result.ParticipantNotifications)),
		slog.Int("notify_results", len(result.NotifyResults)),
		slog.Bool("follow_up_created", result.FollowUpResult != nil),
		slog.Int("branch_errors", len(result.Errors)))
	return result, nil
}

// runOwnTasks creates the operator's tasks with a single store call carrying
// the whole list in analysis order.
func (u *Usecase) runOwnTasks(ctx context.Context, log *slog.Logger, a *entity.Analysis, result *entity.RunResult) {
	if len(a.TasksForMe) == 0 {
		return
	}

	records, err := u.tasks.CreateTasks(ctx, a.TasksForMe)
	result.TasksCreatedForMe = records
	if err != nil {
		log.Error("own task creation failed",
			slog.Int("created", len(records)),
			slog.String("error", err.Error()))
		result.Errors = append(result.Errors, entity.BranchError{
			Branch:  BranchOwnTasks,
			Message: err.Error(),
		})
		return
	}
	log.Info("own tasks created", slog.Int("count", len(records)))
}

// runParticipantTasks stores each group's tasks and notifies that participant
// with a digest of what was created. A failed group is recorded unsent and
// does not stop the remaining groups.
func (u *Usecase) runParticipantTasks(ctx context.Context, log *slog.Logger, t *entity.Transcript, a *entity.Analysis, result *entity.RunResult) {
	for _, group := range a.ParticipantTasks {
		records, err := u.tasks.CreateTasks(ctx, group.Tasks)
		if err != nil {
			log.Error("participant task creation failed",
				slog.String("participant", group.ParticipantEmail),
				slog.Int("created", len(records)),
				slog.String("error", err.Error()))
			result.Errors = append(result.Errors, entity.BranchError{
				Branch:  BranchParticipant,
				Message: fmt.Sprintf("%s: %s", group.ParticipantEmail, err.Error()),
			})
			result.ParticipantNotifications = append(result.ParticipantNotifications, entity.NotificationStatus{
				Email: group.ParticipantEmail,
				Sent:  false,
			})
			continue
		}

		subject := "New tasks from meeting: " + t.Title
		sent, err := u.notifier.Send(ctx, group.ParticipantEmail, subject, composeTaskDigest(records))
		if err != nil {
			log.Error("participant notification failed",
				slog.String("participant", group.ParticipantEmail),
				slog.String("error", err.Error()))
			result.Errors = append(result.Errors, entity.BranchError{
				Branch:  BranchParticipant,
				Message: fmt.Sprintf("%s: %s", group.ParticipantEmail, err.Error()),
			})
			sent = false
		}
		result.ParticipantNotifications = append(result.ParticipantNotifications, entity.NotificationStatus{
			Email: group.ParticipantEmail,
			Sent:  sent,
		})
	}
}

// runNotifications sends each freeform notify item verbatim, one call per item.
func (u *Usecase) runNotifications(ctx context.Context, log *slog.Logger, t *entity.Transcript, a *entity.Analysis, result *entity.RunResult) {
	for _, item := range a.NotifyItems {
		message := item.Message
		if message == "" {
			message = defaultNotifyMessage
		}

		sent, err := u.notifier.Send(ctx, item.ParticipantEmail, "Meeting follow-up: "+t.Title, message)
		if err != nil {
			log.Error("notification failed",
				slog.String("to", item.ParticipantEmail),
				slog.String("error", err.Error()))
			result.Errors = append(result.Errors, entity.BranchError{
				Branch:  BranchNotify,
				Message: fmt.Sprintf("%s: %s", item.ParticipantEmail, err.Error()),
			})
			sent = false
		}
		result.NotifyResults = append(result.NotifyResults, entity.NotifyStatus{
			To:   item.ParticipantEmail,
			Sent: sent,
		})
	}
}

// runFollowUp schedules the proposed meeting when the analysis asks for one.
// Attendees default to the transcript participant list when the analysis did
// not name one.
func (u *Usecase) runFollowUp(ctx context.Context, log *slog.Logger, t *entity.Transcript, a *entity.Analysis, result *entity.RunResult) {
	fu := a.FollowUp
	if fu == nil || !fu.Required {
		return
	}

	attendees := t.Participants
	if fu.AttendeeEmail != "" {
		attendees = []string{fu.AttendeeEmail}
	}

	event, err := u.scheduler.CreateEvent(ctx, fu.MeetingName, fu.SuggestedStart, fu.SuggestedEnd, attendees)
	if err != nil {
		log.Error("follow-up scheduling failed", slog.String("error", err.Error()))
		result.Errors = append(result.Errors, entity.BranchError{
			Branch:  BranchFollowUp,
			Message: err.Error(),
		})
		return
	}
	log.Info("follow-up scheduled", slog.String("event_id", event.ID))
	result.FollowUpResult = event
}

// composeTaskDigest enumerates every created task for the participant's
// notification message.
func composeTaskDigest(records []entity.TaskRecord) string {
	var b strings.Builder
	b.WriteString("You have new tasks from the meeting:\n")
	for _, r := range records {
		fmt.Fprintf(&b, "- %s (due %s): %s\n", r.Fields.Name, r.Fields.DueDate, r.Fields.Description)
	}
	return b.String()
}
