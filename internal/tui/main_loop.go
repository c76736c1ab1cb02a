package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-chart-board/internal/service"
	"github.com/MKhiriev/go-chart-board/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type screen int

const (
	screenSymbols screen = iota
	screenDetail
	screenIntervals
	screenOptions
	screenSymbolForm
)

type mainLoopModel struct {
	ctx      context.Context
	services *service.ClientServices
	session  *service.Session

	screen screen

	symbols []models.Symbol
	idx     int

	intervals   []models.ChartInterval
	intervalIdx int

	opts      models.ChartOptions
	optionIdx int

	formInputs  []textinput.Model
	formFocus   int
	formEditIdx int
	formErr     string

	confirmReset bool

	status string
	errMsg string
}

func newMainLoopModel(ctx context.Context, services *service.ClientServices) mainLoopModel {
	session := services.Session
	session.Open(ctx)

	return mainLoopModel{
		ctx:      ctx,
		services: services,
		session:  session,
		symbols:  session.Symbols(),
		opts:     session.Options(),
	}
}

func (m mainLoopModel) Init() tea.Cmd {
	return nil
}

func (m mainLoopModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case resetDoneMsg:
		m.confirmReset = false
		m.symbols = msg.symbols
		m.intervals = models.CompleteIntervals(msg.charts)
		m.opts = msg.opts
		m.idx = 0
		m.status = "Настройки сброшены"
		m.errMsg = ""
		return m, nil
	case copiedMsg:
		if msg.err != nil {
			m.errMsg = fmt.Sprintf("Ошибка копирования: %v", msg.err)
			return m, nil
		}
		m.status = "Скопировано"
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if m.screen == screenSymbolForm {
			return m.updateForm(msg)
		}
		return m, nil
	}

	if keyMsg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.confirmReset {
		return m.updateConfirmReset(keyMsg)
	}

	switch m.screen {
	case screenSymbols:
		return m.updateSymbols(keyMsg)
	case screenDetail:
		return m.updateDetail(keyMsg)
	case screenIntervals:
		return m.updateIntervals(keyMsg)
	case screenOptions:
		return m.updateOptions(keyMsg)
	case screenSymbolForm:
		return m.updateForm(msg)
	}

	return m, nil
}

func (m mainLoopModel) updateConfirmReset(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch keyMsg.String() {
	case "y", "д":
		return m, m.cmdReset()
	case "n", "esc":
		m.confirmReset = false
	}
	return m, nil
}

func (m mainLoopModel) updateSymbols(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch keyMsg.String() {
	case "q":
		return m, tea.Quit
	case "up":
		if m.idx > 0 {
			m.idx--
		}
	case "down":
		if m.idx < len(m.symbols)-1 {
			m.idx++
		}
	case "K", "ctrl+up":
		if m.idx > 0 {
			m.symbols[m.idx-1], m.symbols[m.idx] = m.symbols[m.idx], m.symbols[m.idx-1]
			m.idx--
			m.applySymbols()
		}
	case "J", "ctrl+down":
		if m.idx < len(m.symbols)-1 {
			m.symbols[m.idx+1], m.symbols[m.idx] = m.symbols[m.idx], m.symbols[m.idx+1]
			m.idx++
			m.applySymbols()
		}
	case " ":
		if item, ok := m.current(); ok {
			visible := !item.IsVisible()
			m.symbols[m.idx].Visible = &visible
			m.applySymbols()
		}
	case "enter":
		if _, ok := m.current(); !ok {
			m.status = "Нет тикеров"
			return m, nil
		}
		m.screen = screenDetail
	case "a":
		m.startForm(-1)
	case "e":
		if _, ok := m.current(); !ok {
			m.status = "Нет тикеров"
			return m, nil
		}
		m.startForm(m.idx)
	case "ctrl+d":
		if _, ok := m.current(); !ok {
			m.status = "Нет тикеров"
			return m, nil
		}
		m.symbols = append(m.symbols[:m.idx], m.symbols[m.idx+1:]...)
		if m.idx >= len(m.symbols) && m.idx > 0 {
			m.idx--
		}
		m.applySymbols()
		m.status = "Тикер удалён"
	case "c":
		item, ok := m.current()
		if !ok {
			m.status = "Нечего копировать"
			return m, nil
		}
		return m, cmdCopy(item.Ticker)
	case "i":
		m.intervals = models.CompleteIntervals(m.session.Charts())
		m.intervalIdx = 0
		m.screen = screenIntervals
	case "o":
		m.opts = m.session.Options()
		m.optionIdx = 0
		m.screen = screenOptions
	case "r":
		m.confirmReset = true
	}

	return m, nil
}

func (m mainLoopModel) updateDetail(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch keyMsg.String() {
	case "esc", "q":
		m.screen = screenSymbols
	case "c":
		if item, ok := m.current(); ok {
			return m, cmdCopy(item.Ticker)
		}
	}
	return m, nil
}

func (m mainLoopModel) updateIntervals(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch keyMsg.String() {
	case "esc", "q":
		m.screen = screenSymbols
	case "up":
		if m.intervalIdx > 0 {
			m.intervalIdx--
		}
	case "down":
		if m.intervalIdx < len(m.intervals)-1 {
			m.intervalIdx++
		}
	case " ":
		if m.intervalIdx >= 0 && m.intervalIdx < len(m.intervals) {
			visible := !m.intervals[m.intervalIdx].IsVisible()
			m.intervals[m.intervalIdx].Visible = &visible
			m.session.SetCharts(m.intervals)
			m.status = "Изменения будут сохранены"
			m.errMsg = ""
		}
	}
	return m, nil
}

var optionLabels = []string{
	"Тема",
	"Авторазмер",
	"Панель диапазонов дат",
	"Скрыть верхнюю панель",
	"Скрыть боковую панель",
	"Скрыть объём",
	"Календарь",
	"Сохранение изображения",
	"Смена тикера в виджете",
	"Публикация",
}

func (m *mainLoopModel) toggleOption() {
	switch m.optionIdx {
	case 0:
		if m.opts.Theme == models.ThemeDark {
			m.opts.Theme = models.ThemeLight
		} else {
			m.opts.Theme = models.ThemeDark
		}
	case 1:
		m.opts.Autosize = !m.opts.Autosize
	case 2:
		m.opts.WithDateRanges = !m.opts.WithDateRanges
	case 3:
		m.opts.HideTopToolbar = !m.opts.HideTopToolbar
	case 4:
		m.opts.HideSideToolbar = !m.opts.HideSideToolbar
	case 5:
		m.opts.HideVolume = !m.opts.HideVolume
	case 6:
		m.opts.Calendar = !m.opts.Calendar
	case 7:
		m.opts.SaveImage = !m.opts.SaveImage
	case 8:
		m.opts.AllowSymbolChange = !m.opts.AllowSymbolChange
	case 9:
		m.opts.EnablePublishing = !m.opts.EnablePublishing
	}
}

func (m mainLoopModel) optionValue(i int) string {
	switch i {
	case 0:
		return m.opts.Theme
	case 1:
		return yesNo(m.opts.Autosize)
	case 2:
		return yesNo(m.opts.WithDateRanges)
	case 3:
		return yesNo(m.opts.HideTopToolbar)
	case 4:
		return yesNo(m.opts.HideSideToolbar)
	case 5:
		return yesNo(m.opts.HideVolume)
	case 6:
		return yesNo(m.opts.Calendar)
	case 7:
		return yesNo(m.opts.SaveImage)
	case 8:
		return yesNo(m.opts.AllowSymbolChange)
	case 9:
		return yesNo(m.opts.EnablePublishing)
	}
	return "-"
}

func (m mainLoopModel) updateOptions(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch keyMsg.String() {
	case "esc", "q":
		m.screen = screenSymbols
	case "up":
		if m.optionIdx > 0 {
			m.optionIdx--
		}
	case "down":
		if m.optionIdx < len(optionLabels)-1 {
			m.optionIdx++
		}
	case " ", "enter":
		m.toggleOption()
		m.session.SetOptions(m.opts)
		m.status = "Изменения будут сохранены"
		m.errMsg = ""
	}
	return m, nil
}

func (m *mainLoopModel) startForm(editIdx int) {
	ticker := textinput.New()
	ticker.Placeholder = "БИРЖА:ПАРА (например BYBIT:BTCUSDT)"
	ticker.Width = 40
	ticker.Focus()

	coin := textinput.New()
	coin.Placeholder = "Монета (например BTC)"
	coin.Width = 40

	amount := textinput.New()
	amount.Placeholder = "Кол-во графиков (можно пусто)"
	amount.Width = 40

	hideVolume := textinput.New()
	hideVolume.Placeholder = "Скрыть объём? (y/n)"
	hideVolume.Width = 40

	if editIdx >= 0 && editIdx < len(m.symbols) {
		item := m.symbols[editIdx]
		ticker.SetValue(item.Ticker)
		coin.SetValue(item.Coin)
		if item.Settings != nil {
			if item.Settings.ChartsAmount > 0 {
				amount.SetValue(strconv.Itoa(item.Settings.ChartsAmount))
			}
			if item.Settings.Chart != nil && item.Settings.Chart.HideVolume {
				hideVolume.SetValue("y")
			}
		}
	}

	m.formInputs = []textinput.Model{ticker, coin, amount, hideVolume}
	m.formFocus = 0
	m.formEditIdx = editIdx
	m.formErr = ""
	m.screen = screenSymbolForm
}

func (m mainLoopModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc":
			m.screen = screenSymbols
			m.formInputs = nil
			m.formErr = ""
			return m, nil
		case "tab":
			m.formInputs[m.formFocus].Blur()
			m.formFocus = (m.formFocus + 1) % len(m.formInputs)
			m.formInputs[m.formFocus].Focus()
			return m, nil
		case "shift+tab":
			m.formInputs[m.formFocus].Blur()
			m.formFocus = (m.formFocus - 1 + len(m.formInputs)) % len(m.formInputs)
			m.formInputs[m.formFocus].Focus()
			return m, nil
		case "enter":
			return m.submitForm()
		}
	}

	var cmd tea.Cmd
	m.formInputs[m.formFocus], cmd = m.formInputs[m.formFocus].Update(msg)
	return m, cmd
}

func (m mainLoopModel) submitForm() (tea.Model, tea.Cmd) {
	ticker := strings.TrimSpace(m.formInputs[0].Value())
	coin := strings.TrimSpace(m.formInputs[1].Value())
	amountRaw := strings.TrimSpace(m.formInputs[2].Value())
	hideVolume := parseYesNo(m.formInputs[3].Value())

	if ticker == "" {
		m.formErr = "нужен тикер"
		return m, nil
	}
	if coin == "" {
		coin = coinFromTicker(ticker)
	}

	item := models.Symbol{Coin: coin, Ticker: ticker}
	if exchange, _, found := strings.Cut(ticker, ":"); found {
		item.Exchange = exchange
	}

	var amount int
	if amountRaw != "" {
		n, err := strconv.Atoi(amountRaw)
		if err != nil || n < 0 {
			m.formErr = "кол-во графиков должно быть числом"
			return m, nil
		}
		amount = n
	}
	if amount > 0 || hideVolume {
		item.Settings = &models.SymbolSettings{ChartsAmount: amount}
		if hideVolume {
			item.Settings.Chart = &models.ChartSettings{HideVolume: true}
		}
	}

	next := append([]models.Symbol(nil), m.symbols...)
	if m.formEditIdx >= 0 && m.formEditIdx < len(next) {
		item.Visible = next[m.formEditIdx].Visible
		next[m.formEditIdx] = item
	} else {
		next = append(next, item)
	}

	if err := m.session.SetSymbols(next); err != nil {
		m.formErr = fmt.Sprintf("тикер %q уже есть в списке", ticker)
		return m, nil
	}

	m.symbols = next
	m.screen = screenSymbols
	m.formInputs = nil
	m.formErr = ""
	m.status = "Изменения будут сохранены"
	m.errMsg = ""
	return m, nil
}

func (m *mainLoopModel) applySymbols() {
	if err := m.session.SetSymbols(m.symbols); err != nil {
		m.errMsg = err.Error()
		return
	}
	m.status = "Изменения будут сохранены"
	m.errMsg = ""
}

func (m mainLoopModel) current() (models.Symbol, bool) {
	if len(m.symbols) == 0 || m.idx < 0 || m.idx >= len(m.symbols) {
		return models.Symbol{}, false
	}
	return m.symbols[m.idx], true
}

func (m mainLoopModel) cmdReset() tea.Cmd {
	ctx := m.ctx
	session := m.session

	return func() tea.Msg {
		session.Reset(ctx)
		return resetDoneMsg{
			symbols: session.Symbols(),
			charts:  session.Charts(),
			opts:    session.Options(),
		}
	}
}

func cmdCopy(text string) tea.Cmd {
	return func() tea.Msg {
		return copiedMsg{err: clipboard.WriteAll(text)}
	}
}

func coinFromTicker(ticker string) string {
	pair := ticker
	if _, rest, found := strings.Cut(ticker, ":"); found {
		pair = rest
	}
	for _, quote := range []string{"USDT", "USD", "EUR", "RUB", "KZT"} {
		if trimmed, found := strings.CutSuffix(pair, quote); found && trimmed != "" {
			return trimmed
		}
	}
	return pair
}
