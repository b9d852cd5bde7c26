package hwy

import "testing"

var testTags = []Tag{FixedTag128{}, FixedTag256{}, FixedTag512{}}

func TestBufferVecSizedByTag(t *testing.T) {
	for _, d := range append(testTags, Scalar{}, WidthTag(24), oddTag(130)) {
		var buf Buffer[int16]
		v := buf.Vec(d)
		if want := WidthOf(d) / 2; v.NumLanes() != want {
			t.Errorf("%s: NumLanes() = %d, want %d", d.Name(), v.NumLanes(), want)
		}
	}
}

func TestLoad(t *testing.T) {
	data := make([]int16, 64)
	for i := range data {
		data[i] = int16(i + 1)
	}
	for _, d := range testTags {
		var buf Buffer[int16]
		v := buf.Vec(d)
		v.Load(data[3:])
		for i := 0; i < v.NumLanes(); i++ {
			if v.Lane(i) != data[3+i] {
				t.Errorf("%s: lane %d: got %v, want %v", d.Name(), i, v.Lane(i), data[3+i])
			}
		}
		out := make([]int16, 64)
		if n := v.Store(out); n != d.Width()/2 {
			t.Errorf("%s: Store wrote %d lanes", d.Name(), n)
		}
	}
}

func TestSetAndZero(t *testing.T) {
	for _, d := range testTags {
		var buf Buffer[int8]
		v := buf.Vec(d)
		v.Set(-3)
		for i := 0; i < v.NumLanes(); i++ {
			if v.Lane(i) != -3 {
				t.Errorf("%s: Set lane %d: got %v, want -3", d.Name(), i, v.Lane(i))
			}
		}
		v.Zero()
		if got := ReduceSum(v); got != 0 {
			t.Errorf("%s: Zero left sum %d", d.Name(), got)
		}
	}
}

func TestArithmeticWraps(t *testing.T) {
	d := FixedTag128{}
	var ab, bb, cb Buffer[int8]
	a, b, c := ab.Vec(d), bb.Vec(d), cb.Vec(d)
	a.Set(127)
	b.Set(1)
	a.Add(b)
	c.Set(-128)
	b.Zero()
	b.Sub(c)

	var pb, kb, xb, yb Buffer[uint32]
	p, k, x, y := pb.Vec(d), kb.Vec(d), xb.Vec(d), yb.Vec(d)
	p.Set(0x80000001)
	k.Set(33)
	p.Mul(k)
	x.Set(0xF0F0)
	y.Set(0x0FF0)
	x.Xor(y)

	for i := 0; i < a.NumLanes(); i++ {
		if a.Lane(i) != -128 {
			t.Errorf("Add lane %d: got %v, want -128", i, a.Lane(i))
		}
		if b.Lane(i) != -128 {
			t.Errorf("Sub lane %d: got %v, want -128", i, b.Lane(i))
		}
	}
	for i := 0; i < p.NumLanes(); i++ {
		if p.Lane(i) != 0x80000001*33&0xFFFFFFFF {
			t.Errorf("Mul lane %d: got %#x", i, p.Lane(i))
		}
		if x.Lane(i) != 0xFF00 {
			t.Errorf("Xor lane %d: got %#x, want 0xff00", i, x.Lane(i))
		}
	}

	k.MulScalar(2)
	if k.Lane(0) != 66 {
		t.Errorf("MulScalar: got %d, want 66", k.Lane(0))
	}
}

func TestSubEqual(t *testing.T) {
	d := FixedTag256{}
	data := make([]int32, 8)
	for i := range data {
		if i%3 == 0 {
			data[i] = 9
		}
	}
	var buf Buffer[int32]
	acc := buf.Vec(d)
	acc.SubEqual(data, 9)
	acc.SubEqual(data, 9)
	for i := range data {
		want := int32(0)
		if i%3 == 0 {
			want = 2
		}
		if acc.Lane(i) != want {
			t.Errorf("lane %d: got %d, want %d", i, acc.Lane(i), want)
		}
	}

	var vb Buffer[int32]
	v := vb.Vec(d)
	v.Load(data)
	if got := v.EqualBits(9); got != 0b01001001 {
		t.Errorf("EqualBits() = %08b, want 01001001", got)
	}
}

func TestSumOfLanesWidens(t *testing.T) {
	d := FixedTag512{}
	var buf Buffer[int8]
	v := buf.Vec(d)
	v.Set(127)
	if got, want := SumOfLanes(v), int64(64*127); got != want {
		t.Errorf("SumOfLanes() = %d, want %d", got, want)
	}
	v.Set(2)
	if got := ReduceSum(v); got != -128 {
		t.Errorf("ReduceSum wraps: got %d, want -128", got)
	}
}

func TestLoadUint32sLE(t *testing.T) {
	src := []byte{1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1, 0xFF}
	var buf Buffer[uint32]
	v := buf.Vec(FixedTag128{})
	LoadUint32sLE(v, src)
	want := []uint32{1, 1 << 8, 1 << 16, 1 << 24}
	for i, w := range want {
		if v.Lane(i) != w {
			t.Errorf("lane %d: got %#x, want %#x", i, v.Lane(i), w)
		}
	}
}

func TestNoAllocs(t *testing.T) {
	data := make([]int64, 8)
	allocs := testing.AllocsPerRun(100, func() {
		var buf Buffer[int64]
		acc := buf.Vec(FixedTag512{})
		acc.SubEqual(data, 0)
		if SumOfLanes(acc) != 8 {
			t.Fatal("unexpected sum")
		}
	})
	if allocs != 0 {
		t.Errorf("vector ops allocated %v times per run", allocs)
	}
}
