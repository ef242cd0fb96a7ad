package dictionary

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"furiganaalign/model"
)

const sampleJMdict = `<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE JMdict [
<!ENTITY v5s "Godan verb with 'su' ending">
<!ENTITY n "noun (common) (futsuumeishi)">
]>
<JMdict>
<entry>
<ent_seq>1001</ent_seq>
<k_ele><keb>話す</keb></k_ele>
<k_ele><keb>咄す</keb></k_ele>
<r_ele><reb>はなす</reb></r_ele>
<sense><pos>&v5s;</pos><gloss>to talk</gloss></sense>
</entry>
<entry>
<ent_seq>1002</ent_seq>
<k_ele><keb>今日</keb></k_ele>
<k_ele><keb>今日は</keb></k_ele>
<r_ele><reb>きょう</reb><re_restr>今日</re_restr></r_ele>
<r_ele><reb>こんにちは</reb><re_restr>今日は</re_restr></r_ele>
<r_ele><reb>コンニチワ</reb><re_nokanji/></r_ele>
<sense><pos>&n;</pos><gloss>today</gloss></sense>
</entry>
<entry>
<ent_seq>1003</ent_seq>
<r_ele><reb>ありがとう</reb></r_ele>
<sense><gloss>thanks</gloss></sense>
</entry>
</JMdict>`

func TestLoadJMdict(t *testing.T) {
	pairs, err := LoadJMdict(strings.NewReader(sampleJMdict))
	require.NoError(t, err)
	assert.Equal(t, []Pair{
		{Sequence: 1001, Written: "話す", Reading: "はなす", Kind: model.Vocab},
		{Sequence: 1001, Written: "咄す", Reading: "はなす", Kind: model.Vocab},
		{Sequence: 1002, Written: "今日", Reading: "きょう", Kind: model.Vocab},
		{Sequence: 1002, Written: "今日は", Reading: "こんにちは", Kind: model.Vocab},
	}, pairs)
}

const sampleJMnedict = `<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE JMnedict [
<!ENTITY surname "family or surname">
]>
<JMnedict>
<entry>
<ent_seq>5000</ent_seq>
<k_ele><keb>秋田</keb></k_ele>
<r_ele><reb>あきた</reb></r_ele>
<trans><name_type>&surname;</name_type><trans_det>Akita</trans_det></trans>
</entry>
</JMnedict>`

func TestLoadJMnedict(t *testing.T) {
	pairs, err := LoadJMnedict(strings.NewReader(sampleJMnedict))
	require.NoError(t, err)
	assert.Equal(t, []Pair{{Sequence: 5000, Written: "秋田", Reading: "あきた", Kind: model.Name}}, pairs)
}

func TestAppendPairs_SkipsKanaForms(t *testing.T) {
	got := appendPairs(nil, 1, []string{"ひらがな", "平仮名"}, "ひらがな", nil, model.Vocab)
	assert.Equal(t, []Pair{{Sequence: 1, Written: "平仮名", Reading: "ひらがな", Kind: model.Vocab}}, got)
}
