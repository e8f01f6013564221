package ui

import (
	"log"
	"sort"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"

	"github.com/ytget/custom-grid/internal/config"
	"github.com/ytget/custom-grid/internal/model"
)

// RootUI owns the screen: the item list, the view state, and the widgets
// rendering them
type RootUI struct {
	window       fyne.Window
	settings     *config.Settings
	localization *Localization

	// Screen state, reset on every launch
	items []model.Item
	state model.ViewState

	header     *HeaderView
	buttons    []*ItemButton
	gridLayout *ColumnGridLayout
	grid       *fyne.Container
	content    *fyne.Container
	scroll     *container.Scroll
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App) *RootUI {
	return newRootUI(window, app, model.DefaultPicker)
}

func newRootUI(window fyne.Window, app fyne.App, picker model.Picker) *RootUI {
	settings := config.NewSettings(app)

	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		settings:     settings,
		localization: localization,
		items:        model.DefaultItems(),
		state:        model.NewViewState(),
	}

	window.SetTitle(localization.GetText(KeyAppTitle))

	ui.setupUI(picker)
	log.Printf("RootUI initialized with %d items, %d columns", len(ui.items), ui.state.ColumnCount)
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI(picker model.Picker) {
	ui.createMenu()

	ui.header = NewHeaderView(&ui.state, picker, ui.localization.GetText(KeyMotto))
	ui.header.OnStateChanged = ui.onStateChanged

	ui.buttons = make([]*ItemButton, 0, len(ui.items))
	objects := make([]fyne.CanvasObject, 0, len(ui.items))
	for _, item := range ui.items {
		btn := NewItemButton(item)
		ui.buttons = append(ui.buttons, btn)
		objects = append(objects, btn)
	}

	ui.gridLayout = NewColumnGridLayout(ui.state.ColumnCount, GridSpacing)
	ui.grid = container.New(ui.gridLayout, objects...)

	ui.content = container.New(&hoverLayout{
		Offset: GridHoverOffset,
		Inset:  GridInset,
	}, ui.header, ui.grid)

	ui.scroll = container.NewVScroll(ui.content)

	background := canvas.NewRectangle(ScreenBackground)
	ui.window.SetContent(container.NewStack(background, ui.scroll))
}

// onStateChanged re-flows the grid for the new column count
func (ui *RootUI) onStateChanged(state model.ViewState) {
	if err := state.Validate(); err != nil {
		log.Printf("Warning: %v", err)
	}

	ui.gridLayout.SetColumns(state.ColumnCount)
	ui.grid.Refresh()
	ui.content.Refresh()
	ui.scroll.Refresh()
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))

	available := ui.localization.GetAvailableLanguages()
	codes := make([]string, 0, len(available))
	for code := range available {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	for _, code := range codes {
		langCode := code // Capture for closure
		langItem := fyne.NewMenuItem(available[code], func() {
			ui.onLanguageChange(langCode)
		})
		langItem.Checked = ui.localization.GetCurrentLanguage() == code
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	ui.window.SetMainMenu(fyne.NewMainMenu(languageMenu))
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)

	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))
	if ui.header != nil {
		ui.header.SetMotto(ui.localization.GetText(KeyMotto))
	}

	// Recreate menu to update checkmarks
	ui.createMenu()
}

// State returns a copy of the current view state
func (ui *RootUI) State() model.ViewState {
	return ui.state
}

// Items returns the items in display order
func (ui *RootUI) Items() []model.Item {
	out := make([]model.Item, len(ui.items))
	copy(out, ui.items)
	return out
}

// Header returns the header view
func (ui *RootUI) Header() *HeaderView {
	return ui.header
}

// Buttons returns the grid buttons in display order
func (ui *RootUI) Buttons() []*ItemButton {
	return ui.buttons
}

// Grid returns the container holding the item buttons
func (ui *RootUI) Grid() *fyne.Container {
	return ui.grid
}
