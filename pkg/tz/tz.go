package tz

import "time"

// Amsterdam is the Europe/Amsterdam location (CET/CEST with automatic DST).
var Amsterdam *time.Location

func init() {
	var err error
	Amsterdam, err = time.LoadLocation("Europe/Amsterdam")
	if err != nil {
		panic("tz: load Europe/Amsterdam: " + err.Error())
	}
}
