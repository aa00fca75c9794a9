package model

// Attendance is a single check-in, open until a check-out is recorded.
type Attendance struct {
	ID           string     `json:"id"`
	GymID        string     `json:"gym_id"`
	MemberID     string     `json:"member_id"`
	CheckInTime  Timestamp  `json:"check_in_time"`
	CheckOutTime *Timestamp `json:"check_out_time"`
	MarkedBy     *string    `json:"marked_by"`

	// Denormalised display fields the API joins in.
	MemberName   *string `json:"member_name"`
	MemberPhone  *string `json:"member_phone"`
	MarkedByName *string `json:"marked_by_name"`
}

// AttendanceSummary is the row shape of the attendance listing.
type AttendanceSummary struct {
	ID           string     `json:"id"`
	MemberName   string     `json:"member_name"`
	CheckInTime  Timestamp  `json:"check_in_time"`
	CheckOutTime *Timestamp `json:"check_out_time"`
}

// AttendanceListResponse is the paginated attendance listing.
type AttendanceListResponse struct {
	Items    []AttendanceSummary `json:"items"`
	Total    int                 `json:"total"`
	Page     int                 `json:"page"`
	PageSize int                 `json:"page_size"`
}

// AttendanceListQuery filters the attendance listing.
type AttendanceListQuery struct {
	TargetDate string // YYYY-MM-DD
	MemberID   string
	Page       int
	PageSize   int
}

// CheckInRequest marks a member as present.
type CheckInRequest struct {
	MemberID string `json:"member_id"`
}

// DailyAttendanceSummary aggregates one day's check-ins.
type DailyAttendanceSummary struct {
	Date          string `json:"date"` // YYYY-MM-DD
	TotalCheckIns int    `json:"total_check_ins"`
	UniqueMembers int    `json:"unique_members"`
}
