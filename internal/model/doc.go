package model

// Package model defines the data shown on the profile screen: the static grid
// items, the header color palette, and the mutable view state driven by taps
// on the avatar.
