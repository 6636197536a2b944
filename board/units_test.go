package board

import (
	"math"
	"testing"
)

// TestLengthToMM 覆盖 Length 在常见单位上到 mm 的换算。
func TestLengthToMM(t *testing.T) {
	cases := []struct {
		in   Length
		want float64
	}{
		{Length{Value: 22, Unit: UnitNone}, 22},
		{Length{Value: 23.7, Unit: UnitMM}, 23.7},
		{Length{Value: 2.54, Unit: UnitCM}, 25.4},
		{Length{Value: 1, Unit: UnitIN}, 25.4},
		{Length{Value: 12, Unit: UnitPT}, 12 * PtToMm},
	}
	for _, tc := range cases {
		if got := tc.in.ToMM(); math.Abs(got-tc.want) > 1e-9 {
			t.Fatalf("%g%s 转 mm 期望 %g，实际 %g", tc.in.Value, UnitToString(tc.in.Unit), tc.want, got)
		}
	}
}

// TestPtMmRoundTrip 验证 pt↔mm 换算的往返精度（允许极小的浮点误差）。
func TestPtMmRoundTrip(t *testing.T) {
	samples := []float64{0, 0.001, 1, 12, 72, 1000}
	for _, pt := range samples {
		mm := pt * PtToMm
		back := mm * MmToPt
		if diff := math.Abs(back - pt); diff > 1e-9 {
			t.Fatalf("pt→mm→pt 往返误差过大: in=%gpt back=%g diff=%g", pt, back, diff)
		}
	}
}

// TestParseLength 验证长度字符串解析：裸数字默认 mm，支持单位后缀。
func TestParseLength(t *testing.T) {
	cases := []struct {
		in     string
		wantMM float64
	}{
		{"22", 22},
		{"23.7mm", 23.7},
		{"2.54cm", 25.4},
		{"1in", 25.4},
		{"0.15 mm", 0.15},
	}
	for _, tc := range cases {
		l, err := ParseLength(tc.in)
		if err != nil {
			t.Fatalf("解析 %q 失败: %v", tc.in, err)
		}
		if got := l.ToMM(); math.Abs(got-tc.wantMM) > 1e-9 {
			t.Fatalf("%q 解析为 mm 错误: got=%g want=%g", tc.in, got, tc.wantMM)
		}
	}
}

// TestParseLengthRejects 验证非法长度报错。
func TestParseLengthRejects(t *testing.T) {
	for _, in := range []string{"", "abc", "12xy", "--3mm"} {
		if _, err := ParseLength(in); err == nil {
			t.Fatalf("解析 %q 应当失败", in)
		}
	}
}
