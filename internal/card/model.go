package card

import (
	"github.com/i474232898/local-weather-forecast-card/internal/hass"
)

// DefaultTitle is shown while the primary entity has no state.
const DefaultTitle = "Local Weather Forecast"

// Attribute names published by the integration.
const (
	attrLanguage      = "language"
	attrShortTerm     = "forecast_short_term"
	attrZambretti     = "forecast_zambretti"
	attrPressureTrend = "forecast_pressure_trend"
	attrTempShort     = "forecast_temp_short"
	attrTemperature   = "temperature"
	attrPressure3h    = "pressure_change_3h"
	attrRainProb      = "rain_prob"
	attrIcons         = "icons"
	attrFirstTime     = "first_time"
	attrSecondTime    = "second_time"
)

// Slot is one of the two future time-slot tiles.
type Slot struct {
	Time string `json:"time"`
	Icon string `json:"icon"`
	Rain string `json:"rain"`
	Temp string `json:"temp"`
}

// RenderModel is everything the card displays, derived from one snapshot.
type RenderModel struct {
	Language     int     `json:"language"`
	Labels       Locale  `json:"labels"`
	Title        string  `json:"title"`
	IconNow      string  `json:"icon_now"`
	ShortText    string  `json:"short_text"`
	CurrentTemp  string  `json:"current_temp"`
	Slots        [2]Slot `json:"slots"`
	ForecastText string  `json:"forecast_text"`
	TrendText    string  `json:"trend_text"`
	Pressure     string  `json:"pressure"`
}

// BuildModel derives the render model from snapshot. It never fails:
// missing entities, missing attributes and malformed values fall back to
// fixed placeholders.
func BuildModel(snapshot hass.Snapshot, cfg Config) RenderModel {
	main := snapshot.Lookup(cfg.Entity)
	detail := snapshot.Lookup(cfg.DetailEntity)
	pressureChange := snapshot.Lookup(cfg.PressureChangeEntity)

	lang := DefaultLanguage
	if raw := main.Attr(attrLanguage); raw != nil {
		if n, ok := toNumber(raw); ok {
			lang = ResolveLanguage(n)
		}
	}
	labels := locales[lang]

	m := RenderModel{
		Language: lang,
		Labels:   labels,
		Title:    displayText(orDefault(main.Value(), DefaultTitle)),
		IconNow:  cfg.IconNow,
	}

	m.ShortText = displayText(at(safeArray(main.Attr(attrShortTerm), nil), 0, labels.Unavailable))
	m.ForecastText = displayText(at(safeArray(main.Attr(attrZambretti), nil), 0, labels.Unavailable))
	m.TrendText = displayText(at(safeArray(main.Attr(attrPressureTrend), nil), 0, dash))
	m.CurrentTemp = formatTemp(main.Attr(attrTemperature))

	temps := slotTemps(safeArray(main.Attr(attrTempShort), nil))
	rain := safeArray(detail.Attr(attrRainProb), fallbackRain)
	icons := safeArray(detail.Attr(attrIcons), fallbackIcons)
	times := [2][]any{
		safeArray(detail.Attr(attrFirstTime), fallbackTime),
		safeArray(detail.Attr(attrSecondTime), fallbackTime),
	}
	for i := range m.Slots {
		m.Slots[i] = Slot{
			Time: displayText(at(times[i], 0, fallbackTime[0])),
			Icon: displayText(at(icons, i, fallbackIcons[i])),
			Rain: displayText(at(rain, i, fallbackRain[i])),
			Temp: temps[i],
		}
	}

	pressure := orDefault(pressureChange.Value(), main.Attr(attrPressure3h))
	m.Pressure = displayText(orDefault(pressure, dash))

	return m
}

func orDefault(v, fallback any) any {
	if v == nil {
		return fallback
	}
	return v
}
