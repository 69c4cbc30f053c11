package payload

import (
	"fmt"
	"strings"
	"testing"
)

func largePayload(n int) []byte {
	var b strings.Builder
	b.WriteString(`{"currentPet": "Wolf-Base", "gear": {"equipped": {"armor": "armor_base_0"}}`)
	for _, field := range []string{FieldQuests, FieldFood, FieldHatchingPotions, FieldEggs} {
		fmt.Fprintf(&b, `, %q: {`, field)
		for i := 0; i < n; i++ {
			if i > 0 {
				b.WriteString(",")
			}
			fmt.Fprintf(&b, `"%s_%d": %d`, field, i, i)
		}
		b.WriteString("}")
	}
	b.WriteString("}")
	return []byte(b.String())
}

func BenchmarkDecode_Small(b *testing.B) {
	data := []byte(fullPayload)
	dec := NewDecoder()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := dec.Decode(data); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkDecode_Large(b *testing.B) {
	data := largePayload(250)
	dec := NewDecoder()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := dec.Decode(data); err != nil {
			b.Fatal(err)
		}
	}
}
