package models_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mamadbah2/herdmethane/internal/domain/models"
)

func TestParseCommand(t *testing.T) {
	tests := []struct {
		input    string
		wantType models.CommandType
		wantArgs []string
	}{
		{"/methane 100 dairy improved seaweed", models.CommandMethane, []string{"100", "dairy", "improved", "seaweed"}},
		{"  CALC 5 Beef conventional none 450kg ", models.CommandMethane, []string{"5", "beef", "conventional", "none", "450kg"}},
		{"/whatif 100 dairy conventional", models.CommandWhatIf, []string{"100", "dairy", "conventional"}},
		{"what-if 10 buffalo improved", models.CommandWhatIf, []string{"10", "buffalo", "improved"}},
		{"/options india", models.CommandOptions, []string{"india"}},
		{"presets", models.CommandOptions, nil},
		{"/start", models.CommandHelp, nil},
		{"help", models.CommandHelp, nil},
		{"how much methane?", models.CommandUnknown, []string{"much", "methane?"}},
		{"   ", models.CommandUnknown, nil},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			cmd := models.ParseCommand(tt.input)
			assert.Equal(t, tt.wantType, cmd.Type)
			assert.Equal(t, tt.wantArgs, cmd.Args)
			assert.Equal(t, tt.input, cmd.Raw)
		})
	}
}

func TestInboundMessage_CommandText(t *testing.T) {
	tests := []struct {
		name string
		msg  models.InboundMessage
		want string
	}{
		{
			name: "text",
			msg:  models.InboundMessage{Type: "text", Text: &models.TextContent{Body: "/help"}},
			want: "/help",
		},
		{
			name: "button reply",
			msg: models.InboundMessage{Type: "interactive", Interactive: &models.InteractiveContent{
				ButtonReply: &models.ReplyItem{ID: "/options", Title: "Options"},
			}},
			want: "/options",
		},
		{
			name: "list reply",
			msg: models.InboundMessage{Type: "interactive", Interactive: &models.InteractiveContent{
				ListReply: &models.ReplyItem{ID: "/whatif 10 dairy improved", Title: "Dairy"},
			}},
			want: "/whatif 10 dairy improved",
		},
		{
			name: "image",
			msg:  models.InboundMessage{Type: "image"},
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.msg.CommandText())
		})
	}
}
