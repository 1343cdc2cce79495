package beta

import (
	"errors"
	"fmt"
	"testing"

	"govern/bot/common"
	"govern/bot/testutil"
	"govern/service"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func admitInteraction(userID string) *discordgo.InteractionCreate {
	return testutil.CommandInteraction("beta_admit", "1", "500", "600", testutil.StringOption("user_id", userID))
}

func TestHandleAdmit(t *testing.T) {
	tests := []struct {
		name       string
		added      bool
		err        error
		wantPrefix string
		wantText   string
	}{
		{
			name:       "added",
			added:      true,
			wantPrefix: "✅",
			wantText:   "User ID 42 has been added to the beta user list.",
		},
		{
			name:       "already present",
			added:      false,
			wantPrefix: "ℹ️",
			wantText:   "User ID 42 is already in the beta user list.",
		},
		{
			name:       "not an owner",
			err:        fmt.Errorf("%w: not an owner", service.ErrPermissionDenied),
			wantPrefix: "❌",
			wantText:   common.PermissionDeniedMessage,
		},
		{
			name:       "non-numeric",
			err:        fmt.Errorf("%w: bad", service.ErrInvalidArgument),
			wantPrefix: "❌",
			wantText:   invalidUserIDMessage,
		},
		{
			name:       "storage failure",
			err:        errors.New("disk gone"),
			wantPrefix: "❌",
			wantText:   "An error occurred while processing your request.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			betaService := new(service.MockBetaService)
			betaService.On("AdmitBetaTester", mock.Anything, int64(1), "42").Return(int64(42), tt.added, tt.err)

			responder := &testutil.FakeResponder{}
			New(betaService).HandleCommand(responder, admitInteraction("42"))

			resp := responder.LastResponse()
			require.NotNil(t, resp)
			assert.Equal(t, discordgo.MessageFlagsEphemeral, resp.Data.Flags)
			assert.Contains(t, resp.Data.Content, tt.wantPrefix)
			assert.Contains(t, resp.Data.Content, tt.wantText)
			betaService.AssertExpectations(t)
		})
	}
}
