package dto

type DashboardResponse struct {
	TotalRegistrations int64            `json:"total_registrations"`
	ByPaymentStatus    map[string]int64 `json:"by_payment_status"`
	ByCategory         map[string]int64 `json:"by_category"`
	TotalCollected     float64          `json:"total_collected"`
	ScansByAction      map[string]int64 `json:"scans_by_action"`
}
