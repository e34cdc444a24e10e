package domain

// AssignmentStatus is the lifecycle state of an assignment.
// It is authoritative; the sent/viewed/answered timestamps are audit data.
type AssignmentStatus string

const (
	AssignmentStatusPending  AssignmentStatus = "pending"
	AssignmentStatusSent     AssignmentStatus = "sent"
	AssignmentStatusViewed   AssignmentStatus = "viewed"
	AssignmentStatusAnswered AssignmentStatus = "answered"
)

func (s AssignmentStatus) String() string { return string(s) }

func (s AssignmentStatus) IsValid() bool {
	switch s {
	case AssignmentStatusPending, AssignmentStatusSent, AssignmentStatusViewed, AssignmentStatusAnswered:
		return true
	}
	return false
}

// Rank orders statuses along the forward lifecycle.
func (s AssignmentStatus) Rank() int {
	switch s {
	case AssignmentStatusPending:
		return 0
	case AssignmentStatusSent:
		return 1
	case AssignmentStatusViewed:
		return 2
	case AssignmentStatusAnswered:
		return 3
	}
	return -1
}

// Channel is an outbound delivery channel chosen by the owner for send and remind.
type Channel string

const (
	ChannelSMS   Channel = "sms"
	ChannelEmail Channel = "email"
	ChannelPush  Channel = "push"
)

func (c Channel) String() string { return string(c) }

// IsContactChannel reports whether c can be used to deliver a link to a person.
func (c Channel) IsContactChannel() bool {
	return c == ChannelSMS || c == ChannelEmail
}

// QuestionSource tells whether a question came from a template or was written by the owner.
type QuestionSource string

const (
	QuestionSourceTemplate QuestionSource = "template"
	QuestionSourceCustom   QuestionSource = "custom"
)

func (s QuestionSource) String() string { return string(s) }

func (s QuestionSource) IsValid() bool {
	return s == QuestionSourceTemplate || s == QuestionSourceCustom
}

// NotificationType is the kind of in-app notification.
type NotificationType string

const (
	NotificationTypeAnswered NotificationType = "answered"
	NotificationTypeViewed   NotificationType = "viewed"
)

func (t NotificationType) String() string { return string(t) }

// DevicePlatform identifies the push platform of a registered device token.
type DevicePlatform string

const (
	DevicePlatformIOS     DevicePlatform = "ios"
	DevicePlatformAndroid DevicePlatform = "android"
)

func (p DevicePlatform) String() string { return string(p) }

func (p DevicePlatform) IsValid() bool {
	return p == DevicePlatformIOS || p == DevicePlatformAndroid
}

// ReminderReason is the machine-readable reason a reminder was refused.
type ReminderReason string

const (
	ReminderReasonAlreadyAnswered     ReminderReason = "already_answered"
	ReminderReasonNotSent             ReminderReason = "not_sent"
	ReminderReasonCooldownActive      ReminderReason = "cooldown_active"
	ReminderReasonMaxRemindersReached ReminderReason = "max_reminders_reached"
	ReminderReasonDailyCapReached     ReminderReason = "daily_cap_reached"
)

func (r ReminderReason) String() string { return string(r) }
