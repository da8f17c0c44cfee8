package filterchain

import (
	"reflect"
	"testing"
)

func TestBuild(t *testing.T) {
	tests := []struct {
		name  string
		spec  Spec
		speed float64
		want  string
	}{
		{
			name:  "no filters at normal speed",
			spec:  Spec{},
			speed: 1.0,
			want:  "",
		},
		{
			name:  "nil spec",
			spec:  nil,
			speed: 1.0,
			want:  "",
		},
		{
			name:  "tempo only",
			spec:  Spec{},
			speed: 2.0,
			want:  "atempo=2.0",
		},
		{
			name: "highpass and loudnorm",
			spec: Spec{
				Loudnorm: {Enabled: true, Params: "I=-16"},
				Highpass: {Enabled: true, Params: "f=200"},
			},
			speed: 1.0,
			want:  "highpass=f=200,loudnorm=I=-16",
		},
		{
			name: "filters then tempo",
			spec: Spec{
				Alimiter: {Enabled: true, Params: "limit=0.9"},
				Lowpass:  {Enabled: true, Params: "f=8000"},
			},
			speed: 1.25,
			want:  "lowpass=f=8000,alimiter=limit=0.9,atempo=1.25",
		},
		{
			name: "disabled and empty params are dropped",
			spec: Spec{
				Highpass:    {Enabled: false, Params: "f=200"},
				Deesser:     {Enabled: true, Params: ""},
				Acompressor: {Enabled: true, Params: "threshold=0.1"},
			},
			speed: 1.0,
			want:  "acompressor=threshold=0.1",
		},
		{
			name: "unknown filters are ignored",
			spec: Spec{
				"speed":  {Enabled: true, Params: "1.2"},
				"aecho":  {Enabled: true, Params: "0.8:0.9:1000:0.3"},
				Loudnorm: {Enabled: true, Params: "I=-16"},
			},
			speed: 1.0,
			want:  "loudnorm=I=-16",
		},
		{
			name: "params passed through verbatim",
			spec: Spec{
				Highpass: {Enabled: true, Params: "not a real=value,,"},
			},
			speed: 1.0,
			want:  "highpass=not a real=value,,",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Build(tt.spec, tt.speed); got != tt.want {
				t.Fatalf("Build() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBuildOrderIndependentOfInsertion(t *testing.T) {
	all := map[string]string{
		Highpass:    "f=100",
		Lowpass:     "f=9000",
		Deesser:     "i=0.4",
		Acompressor: "ratio=4",
		Loudnorm:    "I=-16",
		Alimiter:    "limit=0.95",
	}
	want := "highpass=f=100,lowpass=f=9000,deesser=i=0.4,acompressor=ratio=4,loudnorm=I=-16,alimiter=limit=0.95"

	orders := [][]string{
		Order(),
		{Alimiter, Loudnorm, Acompressor, Deesser, Lowpass, Highpass},
		{Loudnorm, Highpass, Alimiter, Lowpass, Deesser, Acompressor},
	}
	for _, order := range orders {
		spec := Spec{}
		for _, name := range order {
			spec[name] = Setting{Enabled: true, Params: all[name]}
		}
		for i := 0; i < 20; i++ {
			if got := Build(spec, 1.0); got != want {
				t.Fatalf("insertion order %v produced %q", order, got)
			}
		}
	}
}

func TestStagesFollowCanonicalOrder(t *testing.T) {
	spec := Spec{
		Alimiter: {Enabled: true, Params: "limit=0.9"},
		Highpass: {Enabled: true, Params: "f=80"},
		Deesser:  {Enabled: true, Params: "i=0.5"},
	}
	want := []string{"highpass=f=80", "deesser=i=0.5", "alimiter=limit=0.9"}
	if got := spec.Stages(); !reflect.DeepEqual(got, want) {
		t.Fatalf("Stages() = %v, want %v", got, want)
	}
}

func TestFormatSpeed(t *testing.T) {
	cases := map[float64]string{
		2:     "2.0",
		0.5:   "0.5",
		1.2:   "1.2",
		1.25:  "1.25",
		10:    "10.0",
		0.875: "0.875",
	}
	for speed, want := range cases {
		if got := FormatSpeed(speed); got != want {
			t.Fatalf("FormatSpeed(%v) = %q, want %q", speed, got, want)
		}
	}
}

func TestCloneIsIndependent(t *testing.T) {
	original := Spec{Highpass: {Enabled: true, Params: "f=200"}}
	clone := original.Clone()
	clone[Highpass] = Setting{Enabled: false}
	clone[Lowpass] = Setting{Enabled: true, Params: "f=3000"}

	if !original[Highpass].Enabled {
		t.Fatal("mutating the clone changed the original")
	}
	if _, ok := original[Lowpass]; ok {
		t.Fatal("clone additions leaked into the original")
	}
	if got := Spec(nil).Clone(); got == nil {
		t.Fatal("expected non-nil clone of nil spec")
	}
}

func TestOrderReturnsCopy(t *testing.T) {
	order := Order()
	order[0] = "mutated"
	if Order()[0] != Highpass {
		t.Fatal("Order exposed internal slice")
	}
}
