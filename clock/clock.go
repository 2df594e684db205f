// Package clock 提供可注入的当前时间，测试中可固定时间
package clock

import "time"

// Clock 当前时间来源
type Clock interface {
	Now() time.Time
}

// System 系统时钟，返回指定时区的当前时间
type System struct {
	Location *time.Location
}

// Now 当前时间
func (s System) Now() time.Time {
	if s.Location == nil {
		return time.Now()
	}
	return time.Now().In(s.Location)
}

// Fixed 固定时钟，可手动推进
type Fixed struct {
	T time.Time
}

// Now 返回固定时间
func (f *Fixed) Now() time.Time {
	return f.T
}

// Advance 将时钟前移 d
func (f *Fixed) Advance(d time.Duration) {
	f.T = f.T.Add(d)
}
