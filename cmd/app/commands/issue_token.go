package commands

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	validation "github.com/jellydator/validation"

	authService "github.com/tracktainment/duxmanager/internal/auth/service"
	customValidation "github.com/tracktainment/duxmanager/internal/validation"
)

// RunIssueToken signs a development bearer token whose subject is a digital user id.
func RunIssueToken(
	issuer authService.TokenIssuer,
	logger *slog.Logger,
	out io.Writer,
	subject string,
	ttl time.Duration,
	format string,
) error {
	if err := validation.Validate(subject, validation.Required, customValidation.ID); err != nil {
		return fmt.Errorf("invalid subject: %w", err)
	}
	if ttl <= 0 {
		return fmt.Errorf("ttl must be positive, got %s", ttl)
	}

	token, err := issuer.Issue(subject, ttl)
	if err != nil {
		return fmt.Errorf("failed to issue token: %w", err)
	}

	logger.Info("token issued",
		slog.String("subject", subject),
		slog.Duration("ttl", ttl),
	)

	return writeEnv(out, format, []string{"TOKEN"}, map[string]string{"TOKEN": token})
}
