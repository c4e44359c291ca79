package recorder

// TurnSnapshot holds the observable state after one processed turn.
type TurnSnapshot struct {
	Turn           int
	Course         float64
	CourseChange   float64
	Dollar         float64
	Arobase        float64
	ArobaseForSale float64
	Power          int
	Pool           string
	Score          int
	EventTitle     string
	EventCost      float64
}

// TradeEvent records a player trade action.
type TradeEvent struct {
	Turn      int
	EventType string // "BUY", "SELL", "SALE_SETTLED", "CARD_BUY", "CARD_SELL"
	Amount    float64
	Dollar    float64
	Note      string
}

// PoolEvent records a pool membership change.
type PoolEvent struct {
	Turn   int
	Pool   string
	Action string // "JOIN", "LEAVE", "UNLOCK"
	Note   string
}

// Recorder persists historical data for analysis.
type Recorder interface {
	RecordTurn(snap *TurnSnapshot) error
	RecordTrade(evt *TradeEvent) error
	RecordPoolChange(evt *PoolEvent) error
	Close() error
}
