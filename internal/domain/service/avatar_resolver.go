package service

// AvatarResolver produces a default avatar URL for a new account.
type AvatarResolver interface {
	AvatarURL(email string) string
}
