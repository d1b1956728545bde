package adminRepo

import "coursebot/models"

// AdminRepository defines methods for staff identity access.
type AdminRepository interface {
	// GetAllChatIDs returns the chat ids of every registered admin.
	GetAllChatIDs() ([]int64, error)
	// IsAdmin reports whether the chat id belongs to a registered admin.
	IsAdmin(chatID int64) (bool, error)
	// Add registers a new admin chat id (no-op if already present).
	Add(admin *models.Admin) error
}
