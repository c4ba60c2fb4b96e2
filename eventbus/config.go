package eventbus

import (
	"os"
	"strconv"
	"strings"

	"clip-cast/config"
)

// GetBrokers returns Kafka bootstrap servers from env KAFKA_BOOTSTRAP_SERVERS
func GetBrokers() string {
	v := os.Getenv("KAFKA_BOOTSTRAP_SERVERS")
	if v == "" {
		panic("KAFKA_BOOTSTRAP_SERVERS environment variable is required")
	}
	return v
}

// GetGroupID returns consumer group id from env KAFKA_GROUP_ID
func GetGroupID() string {
	v := os.Getenv("KAFKA_GROUP_ID")
	if v == "" {
		panic("KAFKA_GROUP_ID environment variable is required")
	}
	return v
}

// getMessageMaxBytesFromEnv 는 KAFKA_MESSAGE_MAX_BYTES 환경변수에서 message.max.bytes
// 값을 읽어온다. 렌더링된 HTML을 담은 이벤트가 기본 한도를 넘을 수 있어 조정이 필요하다.
// 비어 있거나 파싱에 실패하면 0 을 반환하여 라이브러리 기본값을 사용하게 한다.
func getMessageMaxBytesFromEnv() int {
	raw := strings.TrimSpace(os.Getenv("KAFKA_MESSAGE_MAX_BYTES"))
	if raw == "" {
		return 0
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		config.Logger.Warnf("KAFKA_MESSAGE_MAX_BYTES 환경변수 파싱 실패: %v. 기본값 사용.", err)
		return 0
	}

	if value < 1 {
		config.Logger.Warnf("KAFKA_MESSAGE_MAX_BYTES 환경변수 값이 너무 작습니다. 기본값 사용.")
		return 0
	}

	return value
}

// getMaxPollIntervalMsFromEnv 는 KAFKA_MAX_POLL_INTERVAL_MS 환경변수에서
// max.poll.interval.ms 값을 읽어온다. 렌더링과 AI 요약이 오래 걸리는 핸들러가
// 리밸런스되지 않도록 조정할 때 사용한다. 비어 있거나 0 이하, 파싱 실패 시
// 0 을 반환하여 라이브러리 기본값을 사용하게 한다.
func getMaxPollIntervalMsFromEnv() int {
	raw := strings.TrimSpace(os.Getenv("KAFKA_MAX_POLL_INTERVAL_MS"))
	if raw == "" {
		return 0
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		config.Logger.Warnf("KAFKA_MAX_POLL_INTERVAL_MS 환경변수 파싱 실패: %v. 기본값 사용.", err)
		return 0
	}

	if value <= 0 {
		config.Logger.Warnf("KAFKA_MAX_POLL_INTERVAL_MS 환경변수 값이 0 이하입니다. 기본값 사용.")
		return 0
	}

	return value
}
