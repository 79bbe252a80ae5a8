package application

import (
	"github.com/NorthPeak-Exteriors/site-backend/internal/application/commands"
)

type Collection struct {
	*commands.SubmitContact
}
