// Package game provides the table-side orchestration for a hand of
// euchre: seats and teams, the read-only snapshot handed to deciders,
// and a hand runner that deals, runs the trump call, plays five tricks
// and scores the result.
package game

import "github.com/lox/euchrebot/euchre"

// NumSeats is the number of seats at the table. Seats 0 and 2 form team
// 0, seats 1 and 3 form team 1.
const NumSeats = euchre.NumSeats

// NoSeat marks the absence of a seat (e.g. no partner sitting out).
const NoSeat = -1

// TeamOf returns the team index (0 or 1) for a seat.
func TeamOf(seat int) int {
	return seat % 2
}

// Partner returns the seat across the table.
func Partner(seat int) int {
	return (seat + 2) % NumSeats
}

// NextSeat returns the seat to the left.
func NextSeat(seat int) int {
	return (seat + 1) % NumSeats
}
