package entity

import "time"

// Report bitta baholash natijasi
type Report struct {
	ID         string      `json:"id"`
	Mode       Mode        `json:"mode"`
	Lang       string      `json:"lang"`
	Compatible bool        `json:"compatible"`
	Violations []Violation `json:"violations"`

	// LocalScore deterministik hisoblangan ball
	LocalScore int `json:"local_score"`

	// Score AI javobidan ajratib olingan ball; ScoreParsed false bo'lsa
	// SCORE qatori topilmagan va Score ishonchsiz
	Score       int  `json:"score"`
	ScoreParsed bool `json:"score_parsed"`

	// Text AI hisobotining qolgan matni
	Text string `json:"text"`

	CreatedAt time.Time `json:"created_at"`
}
