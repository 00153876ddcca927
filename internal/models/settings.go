// Roomline - Hotel Property Management Client SDK
// Copyright 2026 Roomline Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/roomline/roomline-go

package models

// TelegramSettings configures the backend's Telegram notifier.
type TelegramSettings struct {
	BotToken           string `json:"bot_token"`
	AdminChatID        string `json:"admin_chat_id"`
	ReceptionChatID    string `json:"reception_chat_id"`
	HousekeepingChatID string `json:"housekeeping_chat_id"`
	MaintenanceChatID  string `json:"maintenance_chat_id"`
	Enabled            bool   `json:"enabled"`
}

// GeneralSettings holds property-wide configuration.
type GeneralSettings struct {
	FrontendDomain             string `json:"frontend_domain"`
	HotelName                  string `json:"hotel_name"`
	HotelAddress               string `json:"hotel_address"`
	HotelPhone                 string `json:"hotel_phone"`
	TemporaryStayDurationHours int    `json:"temporary_stay_duration_hours"`
}

// SystemSettings is the full settings document.
type SystemSettings struct {
	Telegram TelegramSettings `json:"telegram"`
	General  GeneralSettings  `json:"general"`
}

// TelegramTestResult reports a Telegram connectivity test.
type TelegramTestResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	BotInfo *struct {
		ID        int    `json:"id"`
		IsBot     bool   `json:"is_bot"`
		FirstName string `json:"first_name"`
		Username  string `json:"username,omitempty"`
	} `json:"bot_info,omitempty"`
}
