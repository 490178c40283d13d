package net

import (
	"encoding/binary"
	"io"
)

// PlayerPosition is a player's feet position plus stance, the eye-height
// coordinate the client tracks separately from Y.
type PlayerPosition struct {
	X, Y, Stance, Z float64
}

// PlayerLook holds the player's orientation in degrees.
type PlayerLook struct {
	Yaw, Pitch float32
}

type PlayerPositionLook struct {
	Position PlayerPosition
	Look     PlayerLook
}

// ReadPosition reads a client-ordered position record: x, y, stance, z.
func ReadPosition(r io.Reader) (PlayerPosition, error) {
	var raw [4]float64
	if err := binary.Read(r, binary.BigEndian, &raw); err != nil {
		return PlayerPosition{}, IOError(err)
	}
	return PlayerPosition{X: raw[0], Y: raw[1], Stance: raw[2], Z: raw[3]}, nil
}

// WritePosition writes p in the client order read by ReadPosition.
func WritePosition(w io.Writer, p PlayerPosition) error {
	raw := [4]float64{p.X, p.Y, p.Stance, p.Z}
	return IOError(binary.Write(w, binary.BigEndian, raw))
}

func ReadLook(r io.Reader) (PlayerLook, error) {
	var raw [2]float32
	if err := binary.Read(r, binary.BigEndian, &raw); err != nil {
		return PlayerLook{}, IOError(err)
	}
	return PlayerLook{Yaw: raw[0], Pitch: raw[1]}, nil
}

func WriteLook(w io.Writer, l PlayerLook) error {
	raw := [2]float32{l.Yaw, l.Pitch}
	return IOError(binary.Write(w, binary.BigEndian, raw))
}
