package models

// ScoringSettings holds the points awarded for each way a player can score
type ScoringSettings struct {
	PassYd   float64 `mapstructure:"pass_yd" json:"pass_yd"`
	PassTD   float64 `mapstructure:"pass_td" json:"pass_td"`
	RushYd   float64 `mapstructure:"rush_yd" json:"rush_yd"`
	RushTD   float64 `mapstructure:"rush_td" json:"rush_td"`
	Rec      float64 `mapstructure:"rec" json:"rec"`
	RecYd    float64 `mapstructure:"rec_yd" json:"rec_yd"`
	RecTD    float64 `mapstructure:"rec_td" json:"rec_td"`
	Fumble   float64 `mapstructure:"fumble" json:"fumble"`
	Int      float64 `mapstructure:"int" json:"int"`
	FG0to39  float64 `mapstructure:"fg_0_39" json:"fg_0_39"`
	FG40to49 float64 `mapstructure:"fg_40_49" json:"fg_40_49"`
	FG50Plus float64 `mapstructure:"fg_50_plus" json:"fg_50_plus"`
	FGMiss   float64 `mapstructure:"fg_miss" json:"fg_miss"`
	XPMake   float64 `mapstructure:"xp_make" json:"xp_make"`
	XPMiss   float64 `mapstructure:"xp_miss" json:"xp_miss"`
}

// LeagueSettings describes how a fantasy league is set up
type LeagueSettings struct {
	RosterLimits map[RosterSpot]int `mapstructure:"roster_limits" json:"roster_limits"`
	Scoring      ScoringSettings    `mapstructure:"scoring" json:"scoring"`
}
