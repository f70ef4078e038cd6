package dig

import (
	"testing"

	"github.com/stretchr/testify/require"

	"toolbridge/internal/model"
)

const sampleOutput = `; <<>> DiG 9.18.24 <<>> example.com MX
;; global options: +cmd
;; Got answer:
;; ->>HEADER<<- opcode: QUERY, status: NOERROR, id: 31337
;; flags: qr rd ra; QUERY: 1, ANSWER: 2, AUTHORITY: 0, ADDITIONAL: 1

;; QUESTION SECTION:
;example.com.			IN	MX

;; ANSWER SECTION:
example.com.		3600	IN	MX	10 mail.example.com.
example.com.		3600	IN	MX	20 backup.example.com.

;; Query time: 23 msec
;; SERVER: 8.8.8.8#53(8.8.8.8) (UDP)
;; WHEN: Tue Aug 25 10:00:00 UTC 2026
;; MSG SIZE  rcvd: 102
`

func TestBuildArgsDefaults(t *testing.T) {
	got := BuildArgs(model.DigRequest{Domain: "example.com", RecordType: "A"})
	require.Equal(t, []string{"dig", "example.com", "A"}, got)
}

func TestBuildArgsNameserverAndShort(t *testing.T) {
	got := BuildArgs(model.DigRequest{Domain: "example.com", RecordType: "TXT", Nameserver: "1.1.1.1", Short: true})
	require.Equal(t, []string{"dig", "@1.1.1.1", "example.com", "TXT", "+short"}, got)
}

func TestParseQuestionSection(t *testing.T) {
	got := Parse(sampleOutput)

	require.NotNil(t, got.Question)
	require.Equal(t, "example.com.", got.Question.Name)
	require.Equal(t, "IN", got.Question.Class)
	require.Equal(t, "MX", got.Question.Type)
}

func TestParseAnswerDataJoinsTrailingColumns(t *testing.T) {
	got := Parse(sampleOutput)

	require.Len(t, got.Answers, 2)
	require.Equal(t, model.DigAnswer{
		Name: "example.com.", TTL: 3600, Class: "IN", Type: "MX", Data: "10 mail.example.com.",
	}, got.Answers[0])
	require.Equal(t, "20 backup.example.com.", got.Answers[1].Data)
}

func TestParseQueryTimeAndServer(t *testing.T) {
	got := Parse(sampleOutput)

	require.Equal(t, 23, got.QueryTimeMs)
	require.Equal(t, "8.8.8.8#53(8.8.8.8) (UDP)", got.Server)
}

func TestParseSkipsShortAnswerRows(t *testing.T) {
	input := ";; ANSWER SECTION:\nexample.com. 3600 IN A\n"
	got := Parse(input)
	require.Empty(t, got.Answers)
}

func TestParseEmptyInput(t *testing.T) {
	got := Parse("")
	require.Nil(t, got.Question)
	require.NotNil(t, got.Answers)
	require.Empty(t, got.Answers)
}

func TestParseTruncatedSections(t *testing.T) {
	got := Parse(";; QUESTION SECTION:")
	require.Nil(t, got.Question)
}

func TestParseShort(t *testing.T) {
	got := ParseShort("93.184.216.34\n\n2606:2800:220:1:248:1893:25c8:1946\n")
	require.Equal(t, []string{"93.184.216.34", "2606:2800:220:1:248:1893:25c8:1946"}, got.ShortOutput)
	require.Empty(t, got.Answers)
}
