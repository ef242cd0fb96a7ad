package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testKanjidic2 = `<?xml version="1.0" encoding="UTF-8"?>
<kanjidic2>
<character><literal>話</literal><reading_meaning><rmgroup>
<reading r_type="ja_on">ワ</reading>
<reading r_type="ja_kun">はな.す</reading>
<reading r_type="ja_kun">はなし</reading>
</rmgroup></reading_meaning></character>
<character><literal>手</literal><reading_meaning><rmgroup>
<reading r_type="ja_on">シュ</reading>
<reading r_type="ja_kun">て</reading>
<reading r_type="ja_kun">-で</reading>
</rmgroup></reading_meaning></character>
<character><literal>紙</literal><reading_meaning><rmgroup>
<reading r_type="ja_on">シ</reading>
<reading r_type="ja_kun">かみ</reading>
</rmgroup></reading_meaning></character>
</kanjidic2>`

const testJMdict = `<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE JMdict [
<!ENTITY n "noun (common) (futsuumeishi)">
]>
<JMdict>
<entry>
<ent_seq>1</ent_seq>
<k_ele><keb>話す</keb></k_ele>
<k_ele><keb>咄す</keb></k_ele>
<r_ele><reb>はなす</reb></r_ele>
<sense><gloss>to talk</gloss></sense>
</entry>
<entry>
<ent_seq>2</ent_seq>
<k_ele><keb>手紙</keb></k_ele>
<r_ele><reb>てがみ</reb></r_ele>
<sense><gloss>letter</gloss></sense>
</entry>
<entry>
<ent_seq>3</ent_seq>
<k_ele><keb>大人</keb></k_ele>
<r_ele><reb>おとな</reb></r_ele>
<sense><gloss>adult</gloss></sense>
</entry>
</JMdict>`

// setupWorkspace writes resource files and a config into a temp dir and
// returns the config path.
func setupWorkspace(t *testing.T) (string, string) {
	t.Helper()
	dir := t.TempDir()
	write := func(name, content string) string {
		p := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
		return p
	}
	kd := write("kanjidic2.xml", testKanjidic2)
	ex := write("special_expressions.tsv", "# fixed readings\n大人\tおとな\n")
	jm := write("JMdict_e", testJMdict)
	cfg := write("furiganaalign.toml", fmt.Sprintf(`
[resources]
kanjidic2 = %q
expressions = %q

[dictionary]
jmdict = %q

[store]
path = %q

[log]
level = "error"
dir = %q
`, kd, ex, jm, filepath.Join(dir, "db", "furigana.db"), filepath.Join(dir, "logs")))
	return cfg, dir
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := rootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestSolveCommand(t *testing.T) {
	cfg, dir := setupWorkspace(t)

	out, err := run(t, "solve", "話す", "はなす", "--config", cfg, "--dump")
	require.NoError(t, err)
	assert.Equal(t, "話す はなす (vocab): solved\n[話|はな]す\n0:はな\n", out)
	assert.FileExists(t, filepath.Join(dir, "logs", "solve_話す.json"))

	out, err = run(t, "solve", "大人", "おとな", "--config", cfg)
	require.NoError(t, err)
	assert.Contains(t, out, "[大人|おとな]")

	out, err = run(t, "solve", "話す", "ぬぬ", "--config", cfg)
	require.NoError(t, err)
	assert.Equal(t, "話す ぬぬ (vocab): unsolved\n", out)

	_, err = run(t, "solve", "はなす", "はなす", "--config", cfg)
	assert.Error(t, err)
}

func TestBatchShowStats(t *testing.T) {
	cfg, _ := setupWorkspace(t)

	out, err := run(t, "batch", "--config", cfg, "--workers", "2")
	require.NoError(t, err)
	assert.Contains(t, out, ": 4 pairs, 3 solved, 0 ambiguous, 1 unsolved, 0 over budget, 0 invalid in ")

	out, err = run(t, "show", "手紙", "てがみ", "--config", cfg)
	require.NoError(t, err)
	assert.Contains(t, out, "手紙 てがみ (vocab): solved\n[手|て][紙|がみ]\n0:て;1:がみ\n")

	_, err = run(t, "show", "手紙", "てがみ", "--name", "--config", cfg)
	assert.Error(t, err)

	out, err = run(t, "stats", "--config", cfg)
	require.NoError(t, err)
	assert.Equal(t, "unsolved         1\nsolved           3\n", out)
}

func TestBatchCommand_Limit(t *testing.T) {
	cfg, _ := setupWorkspace(t)
	out, err := run(t, "batch", "--config", cfg, "--limit", "1", "--no-store")
	require.NoError(t, err)
	assert.Contains(t, out, ": 1 pairs, 1 solved,")
}

func TestSentenceCommand_NeedsInput(t *testing.T) {
	cfg, _ := setupWorkspace(t)
	_, err := run(t, "sentence", "--config", cfg)
	assert.Error(t, err)
}

func TestLoadApp_BadConfig(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "bad.toml")
	require.NoError(t, os.WriteFile(p, []byte("[tokenizer]\ndict = \"mecab\"\n"), 0o644))
	_, err := run(t, "solve", "話す", "はなす", "--config", p)
	assert.Error(t, err)
}
