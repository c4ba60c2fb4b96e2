package eventbus

import (
	"strings"
	"time"
)

// ParseRetryDelayFromTopicName는 토픽 이름에서 재시도 지연 시간을 추출합니다.
// 토픽 이름 형식: "<base>.retry.<duration>" (예: "clip-cast.video.events.retry.1m0s")
// GetRetryTopic이 생성하는 이름과 같은 형식을 파싱합니다.
// 반환: (delay, ok)
func ParseRetryDelayFromTopicName(name string) (time.Duration, bool) {
	idx := strings.LastIndex(name, ".retry.")
	if idx == -1 || idx+7 >= len(name) {
		return 0, false
	}
	durStr := name[idx+7:]
	d, err := time.ParseDuration(durStr)
	if err != nil {
		return 0, false
	}
	return d, true
}
