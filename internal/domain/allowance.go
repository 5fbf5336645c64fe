package domain

// DailyAllowanceReset is the number of free digs granted each calendar day
const DailyAllowanceReset = 3

// DailyAllowance is the persisted daily dig budget. Date is the local
// calendar day (YYYY-MM-DD) the record belongs to; a mismatch with the
// current day means the allowance rolls over to the reset value.
type DailyAllowance struct {
	Date      string `json:"date"`
	Remaining int    `json:"remaining"`
}
