package i18n

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	p, err := Load()
	require.NoError(t, err)

	require.Equal(t, "Start transfer", p.T(English, StartBtn))
	require.Equal(t, "ابدأ التحويل", p.T(Arabic, StartBtn))
}

func TestFallbacks(t *testing.T) {
	p := MustLoad()

	// ver is only defined in the English table
	require.Equal(t, p.T(English, Ver), p.T(Arabic, Ver))
	require.Contains(t, p.Missing(Arabic), Ver)

	require.Equal(t, "no_such_label", p.T(English, Label("no_such_label")))
	require.Equal(t, p.T(English, StartBtn), p.T(Lang("fr"), StartBtn))
}

func TestEnglishTableIsComplete(t *testing.T) {
	p := MustLoad()
	labels := []Label{
		WelcomeTitle, WelcomeTitleAccent, WelcomeDesc, StartBtn,
		Promo1Title, Promo1Desc, Promo2Title, Promo2Desc, Promo3Title, Promo3Desc,
		LoginTitle, LoginDesc, IDLabel, VerifyBtn, OtpTitle, OtpDesc, OtpLabel, Verifying,
		VerifyProceedBtn, RecipientTitle, RecipientSub, AmountLabel, RecipientGets,
		PayoutCurrency, NextStep, TotalDisb, RecipientLabel, SentLabel, FeeLabel, RateLabel,
		NetPayable, Edit, SendNow, DoneTitle, DoneDesc, RefID, SettledAmt, CloseSession,
		Encrypted, KioskID, EndSession, Back, Language, Ver, FaultUnknownCurrency,
		HintStart, HintLanguage, HintType, HintDelete, HintVerify, HintBack, HintChoose,
		HintSelect, HintCurrency, HintReview, HintSend, HintEdit, HintClose,
	}
	for _, l := range labels {
		require.NotEqual(t, string(l), p.T(English, l), "missing English label %s", l)
	}
}

func TestLang(t *testing.T) {
	require.False(t, English.RTL())
	require.True(t, Arabic.RTL())
	require.Equal(t, Arabic, English.Next())
	require.Equal(t, English, Arabic.Next())
	require.Equal(t, English, Lang("xx").Next())

	lang, err := ParseLang("ar")
	require.NoError(t, err)
	require.Equal(t, Arabic, lang)

	_, err = ParseLang("de")
	require.Error(t, err)
}

func TestHintLabelsTranslated(t *testing.T) {
	p := MustLoad()
	for _, l := range []Label{
		HintStart, HintLanguage, HintType, HintDelete, HintVerify, HintBack, HintChoose,
		HintSelect, HintCurrency, HintReview, HintSend, HintEdit, HintClose,
	} {
		require.NotContains(t, p.Missing(Arabic), l)
		require.NotEqual(t, p.T(English, l), p.T(Arabic, l), "hint %s", l)
	}
	require.Equal(t, "رجوع", p.T(Arabic, HintBack))
}
