package q931

import "testing"

func TestCauseRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		ie   *CauseIE
	}{
		{"no recommendation", &CauseIE{CodingStandard: 0, Location: 1, Value: CauseNormalClearing}},
		{"with recommendation", &CauseIE{CodingStandard: 0, Location: 1, HasRecommendation: true, Recommendation: 2, Value: CauseUserBusy}},
		{"with diagnostics", &CauseIE{Location: 4, Value: CauseInvalidCallReference, Diagnostics: []byte{0x01, 0x02}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := NewWriter()
			packCause(tt.ie, w)
			c := NewCursor(w.Bytes())
			c.ReadByte() // identifier
			got, err := unpackCause(c)
			if err != nil {
				t.Fatalf("unpackCause() error = %v", err)
			}
			if got.Value != tt.ie.Value || got.Location != tt.ie.Location || got.HasRecommendation != tt.ie.HasRecommendation {
				t.Errorf("unpackCause() = %+v, want %+v", got, tt.ie)
			}
		})
	}
}

func TestNumberRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		ie   *Number
	}{
		{"with presentation", &Number{TypeOfNumber: 2, NumberingPlan: 1, HasPresentation: true, Presentation: 0, Screening: 3, Digits: "5551234"}},
		{"without presentation", &Number{TypeOfNumber: 0, NumberingPlan: 1, Digits: "100"}},
		{"empty digits", &Number{Digits: ""}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := NewWriter()
			packNumber(tt.ie, w)
			c := NewCursor(w.Bytes())
			c.ReadByte()
			got, err := unpackNumber(c)
			if err != nil {
				t.Fatalf("unpackNumber() error = %v", err)
			}
			if got.Digits != tt.ie.Digits || got.TypeOfNumber != tt.ie.TypeOfNumber {
				t.Errorf("unpackNumber() = %+v, want %+v", got, tt.ie)
			}
		})
	}
}

func TestGenericDigitsBCD(t *testing.T) {
	tests := []struct {
		name   string
		digits string
		odd    bool
	}{
		{"even length", "1234", false},
		{"odd length", "123", true},
		{"single digit", "9", true},
		{"empty", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			encoded := encodeBCDDigits(tt.digits, tt.odd)
			got := decodeBCDDigits(encoded, tt.odd)
			if got != tt.digits {
				t.Errorf("decodeBCDDigits(encodeBCDDigits(%q)) = %q", tt.digits, got)
			}
		})
	}
}

func TestGenericDigitsIARoundTrip(t *testing.T) {
	gd := &GenericDigits{TypeOfDigits: 1, Encoding: DigitsIA5, Digits: "555-1212"}
	w := NewWriter()
	packGenericDigits(gd, w)
	c := NewCursor(w.Bytes())
	c.ReadByte()
	got, err := unpackGenericDigits(c)
	if err != nil {
		t.Fatalf("unpackGenericDigits() error = %v", err)
	}
	if got.Digits != gd.Digits || got.Encoding != gd.Encoding {
		t.Errorf("unpackGenericDigits() = %+v, want %+v", got, gd)
	}
}

func TestChannelIdentificationPRIExclusive(t *testing.T) {
	ci := &ChannelIdentification{IsPRI: true, Exclusive: true, ChannelNumber: 7}
	w := NewWriter()
	packChannelIdentification(ci, w)
	c := NewCursor(w.Bytes())
	c.ReadByte()
	got, err := unpackChannelIdentification(c)
	if err != nil {
		t.Fatalf("unpackChannelIdentification() error = %v", err)
	}
	if got.ChannelNumber != ci.ChannelNumber || !got.Exclusive || !got.IsPRI {
		t.Errorf("unpackChannelIdentification() = %+v, want %+v", got, ci)
	}
}

func TestBearerCapabilityMultirate(t *testing.T) {
	bc := &BearerCapability{
		InfoTransferCapability: 0x08,
		InfoTransferRate:       RateMultirate,
		HasRateMultiplier:      true,
		RateMultiplier:         6,
	}
	w := NewWriter()
	packBearerCapability(bc, w)
	c := NewCursor(w.Bytes())
	c.ReadByte()
	got, err := unpackBearerCapability(c)
	if err != nil {
		t.Fatalf("unpackBearerCapability() error = %v", err)
	}
	if got.InfoTransferRate != RateMultirate || !got.HasRateMultiplier || got.RateMultiplier != 6 {
		t.Errorf("unpackBearerCapability() = %+v, want %+v", got, bc)
	}
}

func TestShiftSingleOctet(t *testing.T) {
	tests := []struct {
		name    string
		locking bool
		codeset byte
	}{
		{"locking codeset 5", true, 5},
		{"non-locking codeset 6", false, 6},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &Shift{Locking: tt.locking, Codeset: tt.codeset}
			b := packShift(s)
			got := unpackShift(b)
			if got.Locking != tt.locking || got.Codeset != tt.codeset {
				t.Errorf("unpackShift(packShift(%+v)) = %+v", s, got)
			}
		})
	}
}
