package pages

import (
	"ict_forex_app_go/models"
	"ict_forex_app_go/templates/partials"
)

// LandingView carries everything the landing page renders
type LandingView struct {
	SEO    *models.SEO
	Frame  models.BacktestFrame
	Chart  models.ChartGeometry
	Levels []string
	Year   int
}

type card struct {
	Kicker, Title, Body string
}

type navLink struct {
	Href, Label string
}

var sessionBlocks = []card{
	{"Asian Range", "Accumulation", "Define liquidity pool and highs/lows."},
	{"London Open", "Stop Hunt", "Sweep liquidity before expansion."},
	{"New York", "Premium / Discount", "Refine entries around key levels."},
}

var learnPaths = []card{
	{"Foundation", "Beginners", "Learn how FX markets work, key sessions, basic risk management, and how to read clean price charts without clutter."},
	{"Core", "Intermediate", "Dive into liquidity sweeps, FVGs, order blocks, and time-of-day models. Build a complete trading plan with detailed rules."},
	{"Pro", "Advanced", "Add portfolio thinking, multi-timeframe execution, and journaling routines to refine and scale your performance."},
}

var pillars = []card{
	{"Market", "Smart Pair & Session Selection", "Focus on liquid major pairs (EURUSD, GBPUSD, XAUUSD) during optimal sessions, avoiding low-probability environments and news spikes."},
	{"Model", "Rule-Based Trade Models", "Entries based on liquidity sweeps, fair value gaps, order blocks, and market structure shifts, all clearly defined and backtested."},
	{"Mindset", "Risk & Psychology", "Position sizing, journaling, and emotional control so that you execute the plan instead of chasing the market."},
}

var strategySteps = []card{
	{"1", "Define Daily Bias", "Use higher timeframes to mark key highs, lows, and liquidity pools."},
	{"2", "Wait for Liquidity Sweep", "During London or NY session, wait for price to run stops above/below a key level."},
	{"3", "Refine Entry Zone", "Look for fair value gaps, order blocks, and optimal trade entry levels inside the premium/discount range."},
	{"4", "Execute with Fixed Risk", "Risk 0.5-1% per trade, pre-define partials and final take profit at opposing liquidity."},
}

var navLinks = []navLink{
	{"#about", "About"}, {"#edge", "Our Edge"}, {"#strategy", "Strategy"}, {"#learn", "Learn"}, {"#contact", "Contact"},
}

// speeds offered by the backtest card
var speeds = []int{1, 2, 3, 4}

func speedClass(speed, current int) string {
	if speed == current {
		return "speed active"
	}
	return "speed"
}

func toggleLabel(running bool) string {
	if running {
		return "Pause"
	}
	return "Play"
}

func seoOrDefault(seo *models.SEO) *models.SEO {
	if seo == nil {
		return models.DefaultSEO("ICT Forex Trading", "")
	}
	return seo
}

func monthClass(f models.BacktestFrame) string {
	return partials.ReturnClass(f.Stats.MonthRet)
}
