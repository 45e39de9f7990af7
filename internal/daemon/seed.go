package daemon

import (
	"crypto/rand"
	"encoding/hex"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/cometfolio/cometfolio/internal/config"
	"github.com/cometfolio/cometfolio/internal/store"
)

// seed materializes the singleton settings on first startup so that every
// later read hits a stored value. Writing back what the store currently
// reports is a no-op for an already seeded backend.
func seed(cfg *config.Config, st store.Store) error {
	if st.AccessCode() == "" {
		code := cfg.Auth.DefaultAccessCode
		if code == "" {
			generated, err := generateAccessCode()
			if err != nil {
				return err
			}

			code = generated
			log.Warn().Str("access_code", code).Msg("no access code configured, generated one")
		}

		if err := st.SetAccessCode(code); err != nil {
			return errors.Wrap(err, "failed to seed access code")
		}
	}

	if err := st.SetTheme(st.Theme()); err != nil {
		return errors.Wrap(err, "failed to seed theme settings")
	}

	for _, slot := range st.MediaSlots() {
		if err := st.SetMediaSlot(slot); err != nil {
			return errors.Wrap(err, "failed to seed media slots")
		}
	}

	return nil
}

// generateAccessCode returns a new secure random access code.
func generateAccessCode() (string, error) {
	// 16 bytes = 128 bits
	b := make([]byte, 16) //nolint:mnd
	if _, err := rand.Read(b); err != nil {
		return "", errors.Wrap(err, "failed to generate access code")
	}

	return hex.EncodeToString(b), nil
}
