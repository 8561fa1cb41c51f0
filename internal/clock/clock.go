package clock

import "time"

// Clock 提供當前時間；所有時間窗口判斷都依賴這個單一時間來源，
// 測試時可注入固定時鐘
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now().UTC()
}

// System 回傳使用系統時間的 Clock
func System() Clock {
	return systemClock{}
}

// Fixed 固定時間的 Clock，供測試使用
type Fixed struct {
	Time time.Time
}

func (f *Fixed) Now() time.Time {
	return f.Time
}

// Set 調整固定時鐘的時間
func (f *Fixed) Set(t time.Time) {
	f.Time = t
}
