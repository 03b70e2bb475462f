package chatbot

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReplyMatchesFoldedKeywords(t *testing.T) {
	// Diacritics in the prompt must not hide the keyword.
	reply := Reply("Làm sao để tiết kiệm?")
	assert.Equal(t, "Gợi ý: đặt mục tiêu tiết kiệm theo tháng và theo dõi dòng tiền ra vào.", reply)
}

func TestReplyIsDeterministic(t *testing.T) {
	prompt := "nên đầu tư etf không"
	first := Reply(prompt)
	assert.Equal(t, "Bạn có thể tìm hiểu ETF hoặc quỹ mở để đa dạng hóa rủi ro.", first)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, Reply(prompt))
	}
}

func TestReplyFirstGroupWins(t *testing.T) {
	// Mentions both budgets and expenses; the budget group is checked first.
	reply := Reply("ngan sach cho chi tieu an uong")
	assert.Contains(t, []string{
		"Gợi ý: thử quy tắc 50/30/20 và điều chỉnh theo thu nhập thực tế.",
		"Lập ngân sách theo tuần giúp bạn kiểm soát chi tiêu linh hoạt hơn.",
		"Hãy đặt giới hạn cho từng danh mục và xem lại mỗi cuối tuần.",
	}, reply)
}

func TestReplyFallbackEchoesPrompt(t *testing.T) {
	reply := Reply("xin chào")
	assert.Contains(t, reply, "chế độ demo")
	assert.Contains(t, reply, `"xin chào"`)
}
