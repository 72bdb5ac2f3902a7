package db

// Timestamps are stored as RFC 3339 strings so both backends share one record shape

// DutyArea represents a database duty area record
type DutyArea struct {
	ID          string `ssql_header:"id" ssql_type:"uuid"`
	Name        string `ssql_header:"name" ssql_type:"text"`
	Floor       string `ssql_header:"floor" ssql_type:"text"`
	Capacity    int    `ssql_header:"capacity" ssql_type:"int"`
	Priority    int    `ssql_header:"priority" ssql_type:"int"`
	IsActive    bool   `ssql_header:"is_active" ssql_type:"bool"`
	Description string `ssql_header:"description" ssql_type:"text"`
	CreatedAt   string `ssql_header:"created_at" ssql_type:"datetime"`
}

// DutySlot represents a database duty slot record, one teacher in one area on one day
type DutySlot struct {
	ID        string `ssql_header:"id" ssql_type:"uuid"`
	TeacherID string `ssql_header:"teacher_id" ssql_type:"text"`
	AreaID    string `ssql_header:"area_id" ssql_type:"uuid"`
	Day       string `ssql_header:"day" ssql_type:"text"`
	Week      int    `ssql_header:"week" ssql_type:"int"`
	Year      int    `ssql_header:"year" ssql_type:"int"`
	IsActive  bool   `ssql_header:"is_active" ssql_type:"bool"`
	CreatedAt string `ssql_header:"created_at" ssql_type:"datetime"`
	UpdatedAt string `ssql_header:"updated_at" ssql_type:"datetime"`
}

// DutySchedule represents a database weekly schedule record.
// Schedule holds the day -> area -> teachers grid as JSON.
type DutySchedule struct {
	ID        string `ssql_header:"id" ssql_type:"uuid"`
	Week      int    `ssql_header:"week" ssql_type:"int"`
	Year      int    `ssql_header:"year" ssql_type:"int"`
	Schedule  string `ssql_header:"schedule" ssql_type:"json"`
	CreatedAt string `ssql_header:"created_at" ssql_type:"datetime"`
	UpdatedAt string `ssql_header:"updated_at" ssql_type:"datetime"`
}
