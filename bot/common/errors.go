package common

import (
	"errors"
	"fmt"

	"govern/service"

	"github.com/bwmarrin/discordgo"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// PermissionDeniedMessage is shown when a gate check fails
const PermissionDeniedMessage = "You do not have permission to use this command."

// BotError represents a structured error with user-facing and internal messages
type BotError struct {
	UserMessage string // Message shown to Discord user
	LogMessage  string // Internal message for logging
	IncidentID  string // Set for system errors so users can quote it
	Err         error  // Underlying error
}

// Error implements the error interface
func (e *BotError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.LogMessage, e.Err)
	}
	return e.LogMessage
}

// Unwrap returns the underlying error
func (e *BotError) Unwrap() error {
	return e.Err
}

// IsSystem reports whether the error is an unexpected failure rather than a user mistake
func (e *BotError) IsSystem() bool {
	return e.IncidentID != ""
}

// NewUserError creates an error for user-caused issues (bad input, missing permission)
func NewUserError(userMessage string, logMessage string) *BotError {
	return &BotError{
		UserMessage: userMessage,
		LogMessage:  logMessage,
	}
}

// NewSystemError creates an error for unexpected failures. A fresh incident ID ties
// the apology shown to the user to the log entry.
func NewSystemError(err error, logMessage string) *BotError {
	incidentID := uuid.NewString()
	return &BotError{
		UserMessage: fmt.Sprintf("An error occurred while processing your request. Check the bot's logs for details (incident `%s`).", incidentID),
		LogMessage:  logMessage,
		IncidentID:  incidentID,
		Err:         err,
	}
}

// ClassifyError maps a service error onto a BotError. invalidMessage is shown for
// ErrInvalidArgument.
func ClassifyError(err error, command string, invalidMessage string) *BotError {
	switch {
	case errors.Is(err, service.ErrPermissionDenied):
		return NewUserError(PermissionDeniedMessage, fmt.Sprintf("/%s: %v", command, err))
	case errors.Is(err, service.ErrInvalidArgument):
		return NewUserError(invalidMessage, fmt.Sprintf("/%s: %v", command, err))
	default:
		return NewSystemError(err, fmt.Sprintf("/%s failed", command))
	}
}

// RespondWithBotError logs the error and answers the interaction ephemerally
func RespondWithBotError(s Responder, i *discordgo.InteractionCreate, botErr *BotError) {
	if botErr.IsSystem() {
		log.WithFields(log.Fields{
			"incidentID": botErr.IncidentID,
			"error":      botErr.Err,
		}).Error(botErr.LogMessage)
	} else {
		log.Debug(botErr.Error())
	}

	RespondWithError(s, i, botErr.UserMessage)
}
