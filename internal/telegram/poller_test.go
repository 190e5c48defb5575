package telegram

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/central-university-dev/go-reminder-bot/internal/domain/models"
)

func TestBuildCommand(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		text     string
		wantType models.CommandType
		wantArgs string
	}{
		{
			name:     "команда без аргументов",
			text:     "/help",
			wantType: models.CommandHelp,
			wantArgs: "",
		},
		{
			name:     "команда с аргументами",
			text:     "/remind in 10m Купить молоко",
			wantType: models.CommandRemind,
			wantArgs: "in 10m Купить молоко",
		},
		{
			name:     "хвостовой пробел аргументов сохраняется",
			text:     "/remind in 10m ",
			wantType: models.CommandRemind,
			wantArgs: "in 10m ",
		},
		{
			name:     "упоминание бота в группе",
			text:     "/list@reminder_bot",
			wantType: models.CommandList,
			wantArgs: "",
		},
		{
			name:     "упоминание бота с аргументами",
			text:     "/delete@reminder_bot 7",
			wantType: models.CommandDelete,
			wantArgs: "7",
		},
		{
			name:     "обычный текст",
			text:     "привет",
			wantType: models.CommandUnknown,
			wantArgs: "",
		},
		{
			name:     "неизвестная команда",
			text:     "/weather Москва",
			wantType: models.CommandUnknown,
			wantArgs: "Москва",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			command := buildCommand(123, 456, tt.text, "ivan")

			assert.Equal(t, tt.wantType, command.Type)
			assert.Equal(t, tt.wantArgs, command.Args)
			assert.Equal(t, int64(123), command.ChatID)
			assert.Equal(t, int64(456), command.UserID)
			assert.Equal(t, "ivan", command.Username)
		})
	}
}
