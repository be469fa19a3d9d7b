package main

import (
	"encoding/json"
	"os"
	"path/filepath"

	"huering/picker"
)

const settingsVersion = 1

const settingsFile = "huering-settings.json"

var dataDirPath = "."

type settings struct {
	Version int

	RingThickness float32
	DrawBorder    bool

	WindowWidth  int
	WindowHeight int

	LastColor picker.Color
}

var gsdef = settings{
	Version: settingsVersion,

	RingThickness: 20,
	DrawBorder:    true,

	WindowWidth:  480,
	WindowHeight: 560,

	LastColor: picker.NewColor(255, 0, 0, 255),
}

var gs = gsdef

// settingsLoaded reports whether settings were successfully loaded from disk.
var settingsLoaded bool

func loadSettings() bool {
	path := filepath.Join(dataDirPath, settingsFile)
	data, err := os.ReadFile(path)
	if err != nil {
		gs = gsdef
		settingsLoaded = false
		return false
	}

	tmp := gsdef
	if err := json.Unmarshal(data, &tmp); err != nil {
		gs = gsdef
		settingsLoaded = false
		return false
	}
	if tmp.Version != settingsVersion {
		gs = gsdef
		settingsLoaded = false
		return false
	}

	gs = tmp
	settingsLoaded = true
	return true
}

func saveSettings() {
	data, err := json.MarshalIndent(gs, "", "  ")
	if err != nil {
		logError("save settings: %v", err)
		return
	}
	path := filepath.Join(dataDirPath, settingsFile)
	if err := os.WriteFile(path+".tmp", data, 0644); err != nil {
		logError("save settings: %v", err)
		return
	}
	os.Rename(path+".tmp", path)
}
