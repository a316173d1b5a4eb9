// Package avatar resolves default avatar images for new accounts.
package avatar

import (
	"crypto/md5" // #nosec G501 -- Gravatar addresses images by MD5 of the email.
	"encoding/hex"
	"fmt"

	"contacthub/internal/domain/entity"
	"contacthub/internal/domain/service"
)

const gravatarSize = 250

type gravatarResolver struct{}

// NewGravatarResolver creates the Gravatar-backed AvatarResolver.
func NewGravatarResolver() service.AvatarResolver {
	return &gravatarResolver{}
}

func (r *gravatarResolver) AvatarURL(email string) string {
	sum := md5.Sum([]byte(entity.NormalizeEmail(email)))

	return fmt.Sprintf("https://www.gravatar.com/avatar/%s?s=%d", hex.EncodeToString(sum[:]), gravatarSize)
}
