package util

const (
	DateFormat = "2006-01-02"
	TimeFormat = "15:04"
)

const (
	StorageLocal = "local"
	StorageMinio = "minio"
)

// Tipos MIME aceptados para la foto de perfil.
var AllowedImageTypes = []string{"image/jpeg", "image/png", "image/gif", "image/webp"}

// Tamaño máximo de la foto de perfil (5MB).
const MaxAvatarSize = 5 * 1024 * 1024
