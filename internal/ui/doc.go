package ui

// Package ui contains the Fyne-based user interface: the profile header with
// its tappable avatar, the responsive item grid, and the cells that size
// their icon and title from the width the layout assigns them.
