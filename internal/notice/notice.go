// Package notice carries the console's transient notifications. Every
// operator action ends in exactly one notice; none of them block input.
package notice

import (
	"errors"
	"time"

	"leadconsole/internal/lead"
	"leadconsole/internal/roster"
	"leadconsole/internal/session"
)

// Level is the severity of a notice.
type Level string

const (
	LevelInfo    Level = "info"
	LevelSuccess Level = "success"
	LevelError   Level = "error"
)

// DefaultTTL is how long a notice stays on screen.
const DefaultTTL = 5 * time.Second

// Notice is one transient notification.
type Notice struct {
	Title     string
	Message   string
	Level     Level
	Timestamp time.Time
}

// IsError reports whether n should be rendered as destructive.
func (n Notice) IsError() bool { return n.Level == LevelError }

// Expired reports whether n has outlived ttl at now.
func (n Notice) Expired(now time.Time, ttl time.Duration) bool {
	return !n.Timestamp.IsZero() && now.Sub(n.Timestamp) >= ttl
}

// Info builds an informational notice stamped with the current time.
func Info(title, message string) Notice {
	return Notice{Title: title, Message: message, Level: LevelInfo, Timestamp: time.Now()}
}

// Success builds a success notice.
func Success(title, message string) Notice {
	return Notice{Title: title, Message: message, Level: LevelSuccess, Timestamp: time.Now()}
}

// Error builds an error notice.
func Error(message string) Notice {
	return Notice{Title: "Erro", Message: message, Level: LevelError, Timestamp: time.Now()}
}

// operator-facing text for known errors, most specific first
var messages = []struct {
	err error
	msg string
}{
	{lead.ErrNoRecipient, "Selecione um vendedor."},
	{lead.ErrEmptyPool, "Importe leads antes de distribuir."},
	{lead.ErrNoFile, "Selecione um arquivo CSV para importar."},
	{lead.ErrTooFewLines, "Arquivo CSV deve ter pelo menos um cabeçalho e uma linha de dados."},
	{roster.ErrDuplicateEmail, "Este email já está cadastrado."},
	{roster.ErrProtectedUser, "Não é possível remover usuários master."},
	{roster.ErrUserNotFound, "Usuário não encontrado."},
	{roster.ErrValidation, "Preencha todos os campos obrigatórios."},
	{session.ErrMissingCredentials, "Por favor, preencha todos os campos."},
}

// FromError maps err to an error notice. Unknown errors keep their own text.
func FromError(err error) Notice {
	for _, m := range messages {
		if errors.Is(err, m.err) {
			return Error(m.msg)
		}
	}
	var ie *lead.ImportError
	if errors.As(err, &ie) {
		return Error("Não foi possível importar o arquivo: " + ie.Err.Error())
	}
	return Error(err.Error())
}
