package models

// Settings is the single global configuration record. Only the resolved
// contact link matters to callers; RawUsername is whatever the backend row
// actually held (a bare handle or a full URL).
type Settings struct {
	TelegramLink string `json:"telegram_link"`
	RawUsername  string `json:"raw_username"`
}

// SettingsUpdateResult always reports success; the note tells the admin
// whether the value reached the backend or only the local cache.
type SettingsUpdateResult struct {
	Success bool   `json:"success"`
	Note    string `json:"note,omitempty"`
}
