package dto

type OverviewOutput struct {
	TargetDate     string
	StartDate      string
	Today          string
	DaysLeft       int
	ElapsedDays    int
	TotalSpanDays  int
	ProgressPct    int
	ConsistencyPct int
	StreakDays     int
	TotalMinutes   int
	EntryCount     int
	ActiveDays     int
}

type CategoryTotal struct {
	Name    string
	Minutes int
}

type TotalsOutput struct {
	BySubtest  []CategoryTotal
	ByMaterial []CategoryTotal
}

type TrendPoint struct {
	Date    string
	Minutes int
}

type ScorePoint struct {
	Date  string
	Score float64
}
