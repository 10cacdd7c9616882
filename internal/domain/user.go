package domain

import "time"

// UserData is the account record of the logged in user.
type UserData struct {
	ID             int      `json:"id"`
	Language       Language `json:"language"`
	Credits        int      `json:"nb_credits"`
	CreditValue    float64  `json:"credit_value"`
	CurrencyName   string   `json:"currency_name"`
	CurrencySymbol string   `json:"currency_symbol"`
}

// UserStats holds the sales and upload counters of the logged in user.
type UserStats struct {
	MediaUploaded   int `json:"nb_media_uploaded"`
	MediaAccepted   int `json:"nb_media_accepted"`
	MediaPurchased  int `json:"nb_media_purchased"`
	MediaSold       int `json:"nb_media_sold"`
	RankingAbsolute int `json:"ranking_absolute"` // Top sellers ever
	RankingRelative int `json:"ranking_relative"` // Top sellers over 7 days
}

// AdvancedStat names a counter of getUserAdvancedStats.
type AdvancedStat string

const (
	StatViewedPhotos     AdvancedStat = "member_viewed_photos"
	StatDownloadedPhotos AdvancedStat = "member_downloaded_photos"
	StatBoughtPhotos     AdvancedStat = "member_bought_photos"
	StatEarnedCredits    AdvancedStat = "member_earned_credits"
)

// TimeRange groups advanced statistics.
type TimeRange string

const (
	TimeRangeDay     TimeRange = "day"
	TimeRangeWeek    TimeRange = "week"
	TimeRangeMonth   TimeRange = "month"
	TimeRangeQuarter TimeRange = "quarter"
	TimeRangeYear    TimeRange = "year"
)

var TimeRanges = []TimeRange{
	TimeRangeDay,
	TimeRangeWeek,
	TimeRangeMonth,
	TimeRangeQuarter,
	TimeRangeYear,
}

// Period limits advanced statistics either to a named period or to a date range.
// The zero value means no limit.
type Period struct {
	Name  string
	Start time.Time
	End   time.Time
}

var NamedPeriods = []string{
	"all",
	"today",
	"yesterday",
	"one_day",
	"two_days",
	"three_days",
	"one_week",
	"one_month",
}

// NamedPeriod returns a period such as "one_week".
func NamedPeriod(name string) Period {
	return Period{Name: name}
}

// DateRange returns a period spanning start to end.
func DateRange(start, end time.Time) Period {
	return Period{Start: start, End: end}
}

// IsZero reports whether the period places no limit.
func (p Period) IsZero() bool {
	return p.Name == "" && p.Start.IsZero() && p.End.IsZero()
}
