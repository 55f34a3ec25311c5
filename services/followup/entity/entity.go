package entity

type (
	// Transcript is the normalized meeting transcript. It is immutable once
	// fetched and owned by the run that fetched it.
	Transcript struct {
		ID           string     `json:"id"`
		Title        string     `json:"title"`
		Participants []string   `json:"participants"`
		Sentences    []Sentence `json:"sentences"`
		Summary      Summary    `json:"summary"`
	}

	Sentence struct {
		Speaker string `json:"speaker"`
		Text    string `json:"text"`
	}

	Summary struct {
		Gist string `json:"gist"`
	}
)

type (
	// Task is a value object; Name is required and must be non-empty.
	Task struct {
		Name        string `json:"name"`
		Description string `json:"description"`
		DueDate     string `json:"due_date"`
		Priority    string `json:"priority"`
		ProjectName string `json:"project_name,omitempty"`
	}

	// ParticipantTaskGroup holds the tasks owned by one non-operator participant.
	ParticipantTaskGroup struct {
		ParticipantEmail string `json:"participant_email"`
		Tasks            []Task `json:"tasks"`
	}

	// NotifyItem is a freeform notification instruction, independent of task creation.
	NotifyItem struct {
		ParticipantEmail string `json:"participant_email"`
		Message          string `json:"message"`
	}

	FollowUp struct {
		Required       bool   `json:"required"`
		SuggestedStart string `json:"suggested_start"`
		SuggestedEnd   string `json:"suggested_end"`
		AttendeeEmail  string `json:"attendee_email,omitempty"`
		MeetingName    string `json:"meeting_name"`
	}

	// Analysis is the structured output of the analysis engine. Produced fresh
	// per transcript and never mutated afterwards.
	Analysis struct {
		TasksForMe       []Task                 `json:"tasks_for_me"`
		ParticipantTasks []ParticipantTaskGroup `json:"participant_tasks"`
		NotifyItems      []NotifyItem           `json:"notify_items"`
		FollowUp         *FollowUp              `json:"follow_up"`
	}
)

type (
	// TaskRecord is the handle returned by a task creation call: an opaque
	// identifier plus the fields of the created task.
	TaskRecord struct {
		ID     string `json:"id"`
		Fields Task   `json:"fields"`
	}

	// EventRecord is the handle returned by a calendar event creation call.
	EventRecord struct {
		ID       string `json:"id"`
		HTMLLink string `json:"html_link,omitempty"`
		MeetLink string `json:"meet_link,omitempty"`
	}

	NotificationStatus struct {
		Email string `json:"email"`
		Sent  bool   `json:"sent"`
	}

	NotifyStatus struct {
		To   string `json:"to"`
		Sent bool   `json:"sent"`
	}

	// BranchError records a failure contained to a single post-analysis branch.
	BranchError struct {
		Branch  string `json:"branch"`
		Message string `json:"error"`
	}

	// RunResult is the terminal artifact of one orchestrator invocation. It is
	// built incrementally as branches complete and is always returned once the
	// fatal stages (fetch, analyze) have passed, even when branches failed.
	RunResult struct {
		RunID                    string               `json:"run_id"`
		MeetingID                string               `json:"meeting_id"`
		TasksCreatedForMe        []TaskRecord         `json:"tasks_created_for_me"`
		ParticipantNotifications []NotificationStatus `json:"participant_notifications"`
		NotifyResults            []NotifyStatus       `json:"notify_results"`
		FollowUpResult           *EventRecord         `json:"follow_up_result,omitempty"`
		Errors                   []BranchError        `json:"errors,omitempty"`
	}
)
