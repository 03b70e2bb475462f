// Package chatbot is the canned demo advisor behind the chat screen. It
// never calls a model: replies come from keyword groups, and the variant
// choice is a stable hash of the prompt so the same question always gets
// the same answer.
package chatbot

import (
	"fmt"

	"github.com/pocketfin-dev/pocketfin/internal/textfold"
)

// Greeting seeds an empty chat thread.
const Greeting = "Chat AI (demo). Hãy hỏi về thu chi, ngân sách, hoặc kế hoạch tiết kiệm."

type group struct {
	keywords []string
	replies  []string
}

// Keyword matching runs on folded text, so "tiết kiệm" and "tiet kiem"
// hit the same group. Groups are checked in order; first match wins.
var groups = []group{
	{
		keywords: []string{"tiet kiem", "tich luy", "saving", "ky luat"},
		replies: []string{
			"Gợi ý: đặt mục tiêu tiết kiệm theo tháng và theo dõi dòng tiền ra vào.",
			"Bạn có thể bắt đầu với 10-20% thu nhập, sau đó tăng dần khi ổn định.",
			"Chia mục tiêu lớn thành mục tiêu nhỏ theo tuần hoặc theo tháng sẽ dễ theo hơn.",
		},
	},
	{
		keywords: []string{"ngan sach", "budget", "ke hoach chi"},
		replies: []string{
			"Gợi ý: thử quy tắc 50/30/20 và điều chỉnh theo thu nhập thực tế.",
			"Lập ngân sách theo tuần giúp bạn kiểm soát chi tiêu linh hoạt hơn.",
			"Hãy đặt giới hạn cho từng danh mục và xem lại mỗi cuối tuần.",
		},
	},
	{
		keywords: []string{"chi tieu", "chi phi", "expense", "mua sam", "an uong", "di lai", "hoa don", "subscription"},
		replies: []string{
			"Gợi ý: nhóm chi phí theo danh mục và đặt giới hạn cho mỗi danh mục.",
			"Theo dõi 7 ngày liên tiếp để xác định khoản chi nào là không cần thiết.",
			"Bạn có thể thử cắt 1-2 khoản chi nhỏ và đánh giá lại sau 30 ngày.",
		},
	},
	{
		keywords: []string{"thu nhap", "income", "luong", "tang thu", "thuong"},
		replies: []string{
			"Gợi ý: ưu tiên tiết kiệm trước, chi tiêu sau (pay yourself first).",
			"Hãy tách tiền thu nhập thành các phong bì: tiết kiệm, chi tiêu, dự phòng.",
			"Nếu thu nhập không đều, hãy lấy mức trung bình 3 tháng làm mốc.",
		},
	},
	{
		keywords: []string{"no", "tra no", "vay", "lai suat", "the tin dung", "credit"},
		replies: []string{
			"Gợi ý: ưu tiên trả khoản có lãi suất cao trước (avalanche).",
			"Bạn có thể thử phương pháp snowball: trả khoản nhỏ trước để tạo động lực.",
			"Hạn chế dùng thẻ tín dụng cho khoản chi không thiết yếu.",
		},
	},
	{
		keywords: []string{"dau tu", "invest", "co phieu", "trai phieu", "quy", "etf", "vang"},
		replies: []string{
			"Gợi ý: bắt đầu với quỹ dự phòng trước khi đầu tư.",
			"Bạn có thể tìm hiểu ETF hoặc quỹ mở để đa dạng hóa rủi ro.",
			"Luôn xác định mục tiêu và khẩu vị rủi ro trước khi giải ngân.",
		},
	},
	{
		keywords: []string{"quy du phong", "khan cap", "emergency"},
		replies: []string{
			"Gợi ý: xây quỹ dự phòng 3-6 tháng chi tiêu thiết yếu.",
			"Tách quỹ dự phòng khỏi tài khoản chi tiêu để tránh dùng nhầm.",
			"Có thể đặt chuyển khoản tự động mỗi tháng cho quỹ dự phòng.",
		},
	},
	{
		keywords: []string{"muc tieu", "ke hoach", "mua nha", "mua xe", "du lich"},
		replies: []string{
			"Gợi ý: đặt mục tiêu theo thời hạn và số tiền cụ thể.",
			"Chia mục tiêu thành các mốc nhỏ sẽ dễ theo dõi hơn.",
			"Bạn có thể lập kế hoạch theo tháng rồi điều chỉnh theo thực tế.",
		},
	},
	{
		keywords: []string{"theo doi", "ghi chep", "bao cao", "kiem soat", "thong ke"},
		replies: []string{
			"Gợi ý: ghi lại chi tiêu hằng ngày để thấy mô hình tiêu dùng.",
			"Kiểm tra báo cáo mỗi tuần giúp bạn điều chỉnh kịp thời.",
			"Bạn có thể đặt nhắc nhở cuối ngày để cập nhật giao dịch.",
		},
	},
}

// Reply builds the demo answer for a prompt.
func Reply(prompt string) string {
	folded := textfold.Fold(prompt)
	for _, g := range groups {
		if textfold.ContainsAny(folded, g.keywords...) {
			return pickVariant(folded, g.replies)
		}
	}
	return fmt.Sprintf("Tôi đang ở chế độ demo. Bạn vừa hỏi: %q.", prompt)
}

// pickVariant hashes the seed into an index so repeated prompts stay
// deterministic without any stored state.
func pickVariant(seed string, variants []string) string {
	if len(variants) == 0 {
		return ""
	}
	hash := 0
	i := 0
	for _, r := range seed {
		hash = (hash + int(r)*(i+1)) % len(variants)
		i++
	}
	return variants[hash]
}
