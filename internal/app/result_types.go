package app

import "khata-backend/internal/core"

// UserSession is the authenticated identity handed to the web adapter for
// token issuance.
type UserSession struct {
	UserID      int    `json:"user_id"`
	Username    string `json:"username"`
	DisplayName string `json:"display_name"`
}

// DailySheetResult bundles a day's opening balance row with its sale lines.
// Sheet is nil when no opening balance has been recorded for the date.
type DailySheetResult struct {
	Sheet *core.DailySaleSheet `json:"sheet"`
	Sales []core.DailySale     `json:"sales"`
}
