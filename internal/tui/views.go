package tui

import (
	"fmt"
	"strings"
)

func (m mainLoopModel) View() string {
	if m.confirmReset {
		return m.viewConfirmReset()
	}

	switch m.screen {
	case screenDetail:
		return m.viewDetail()
	case screenIntervals:
		return m.viewIntervals()
	case screenOptions:
		return m.viewOptions()
	case screenSymbolForm:
		return m.viewForm()
	}

	return m.viewSymbols()
}

func (m mainLoopModel) viewSymbols() string {
	out := ""

	if m.errMsg != "" {
		out += "Ошибка: " + m.errMsg + "\n"
	}
	if m.status != "" {
		out += "Статус: " + m.status + "\n"
	}
	if out != "" {
		out += "\n"
	}

	if len(m.symbols) == 0 {
		out += "Тикеров нет\n"
	} else {
		out += "    │ Вид │ Тикер                │ Монета │ Биржа\n"
		out += "────┼─────┼──────────────────────┼────────┼──────────\n"
		for i, item := range m.symbols {
			cursor := " "
			if i == m.idx {
				cursor = ">"
			}

			out += fmt.Sprintf(
				"%s %-2d│ %s │ %-20s │ %-6s │ %s\n",
				cursor,
				i+1,
				visibleMark(item.IsVisible()),
				fitText(item.Ticker, 20),
				fitText(item.Coin, 6),
				valueOrDash(item.Exchange),
			)
		}
		out += "\n" + coinSummary(m.symbols) + "\n"
	}

	return renderPage(
		"ТИКЕРЫ ДАШБОРДА",
		strings.TrimRight(out, "\n"),
		"a: добавить │ e: изм. │ ctrl+d: уд. │ пробел: вкл/выкл │ K/J: порядок │ c: копировать │ enter: графики │ i: интервалы │ o: опции │ r: сброс │ q: выход",
	)
}

func (m mainLoopModel) viewDetail() string {
	item, ok := m.current()
	if !ok {
		return renderPage("ГРАФИКИ", "Тикер не найден", "esc: назад")
	}

	var b strings.Builder
	b.WriteString("Тикер     : " + item.Ticker + "\n")
	b.WriteString("Монета    : " + valueOrDash(item.Coin) + "\n")
	b.WriteString("Биржа     : " + valueOrDash(item.Exchange) + "\n\n")

	configs := m.services.ConfigService.WidgetConfigs(m.ctx, item)
	if len(configs) == 0 {
		b.WriteString("Нет видимых интервалов\n")
	} else {
		b.WriteString("Интервал │ Тема  │ Объём скрыт\n")
		b.WriteString("─────────┼───────┼────────────\n")
		for _, cfg := range configs {
			interval, _ := cfg["interval"].(string)
			theme, _ := cfg["theme"].(string)
			hideVolume, _ := cfg["hide_volume"].(bool)
			b.WriteString(fmt.Sprintf("%-8s │ %-5s │ %s\n", interval, theme, yesNo(hideVolume)))
		}
	}

	return renderPage("ГРАФИКИ: "+item.Ticker, strings.TrimRight(b.String(), "\n"), "c: копировать тикер │ esc: назад")
}

func (m mainLoopModel) viewIntervals() string {
	out := ""
	if m.status != "" {
		out += "Статус: " + m.status + "\n\n"
	}

	for i, item := range m.intervals {
		cursor := " "
		if i == m.intervalIdx {
			cursor = ">"
		}
		out += fmt.Sprintf("%s %s %s\n", cursor, visibleMark(item.IsVisible()), intervalLabel(item.Interval))
	}

	return renderPage("ИНТЕРВАЛЫ ГРАФИКОВ", strings.TrimRight(out, "\n"), "пробел: вкл/выкл │ ↑/↓: навигация │ esc: назад")
}

func (m mainLoopModel) viewOptions() string {
	out := ""
	if m.status != "" {
		out += "Статус: " + m.status + "\n\n"
	}

	for i, label := range optionLabels {
		cursor := " "
		if i == m.optionIdx {
			cursor = ">"
		}
		out += fmt.Sprintf("%s %-24s: %s\n", cursor, label, m.optionValue(i))
	}

	return renderPage("ОПЦИИ ВИДЖЕТА", strings.TrimRight(out, "\n"), "пробел: переключить │ ↑/↓: навигация │ esc: назад")
}

func (m mainLoopModel) viewForm() string {
	title := "НОВЫЙ ТИКЕР"
	if m.formEditIdx >= 0 {
		title = "ИЗМЕНЕНИЕ ТИКЕРА"
	}

	out := "Тикер       : [ " + m.formInputs[0].View() + " ]\n"
	out += "Монета      : [ " + m.formInputs[1].View() + " ]\n"
	out += "Графиков    : [ " + m.formInputs[2].View() + " ]\n"
	out += "Скрыть объём: [ " + m.formInputs[3].View() + " ]\n"
	if m.formErr != "" {
		out += "\nОшибка: " + m.formErr + "\n"
	}

	return renderPage(title, strings.TrimRight(out, "\n"), "tab: след. поле │ shift+tab: пред. поле │ enter: сохранить │ esc: отмена")
}

func (m mainLoopModel) viewConfirmReset() string {
	content := "Сбросить все настройки к значениям по умолчанию?\n\n"
	content += "y да    n нет"
	return overlayBoxStyle.Render(content)
}

func intervalLabel(interval string) string {
	switch interval {
	case "D":
		return "1 день"
	case "W":
		return "1 неделя"
	case "M":
		return "1 месяц"
	default:
		return interval + " мин"
	}
}
