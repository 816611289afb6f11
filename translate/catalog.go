// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package translate

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// korean translations, keyed by the en-US format.
var korean = map[string]string{
	// Arithmetic
	"bit %d: %d + %d + carry %d = %d, carry %d":                       "비트 %d: %d + %d + 올림 %d = %d, 올림 %d",
	"bit %d: %d - %d - borrow %d = %d, borrow %d":                     "비트 %d: %d - %d - 빌림 %d = %d, 빌림 %d",
	"overflow: final carry discarded":                                 "오버플로: 마지막 올림은 버립니다",
	"underflow: final borrow discarded":                               "언더플로: 마지막 빌림은 버립니다",
	"bit %d of multiplier is 0: skip":                                 "승수의 비트 %d은(는) 0: 건너뜀",
	"bit %d of multiplier is 1: add partial product %v":               "승수의 비트 %d은(는) 1: 부분곱 %v 더하기",
	"running sum: %v":                                                 "누적 합: %v",
	"round %d: bring down bit %d, remainder %v":                       "%d단계: 비트 %d 내림, 나머지 %v",
	"remainder >= divisor %v: subtract, quotient bit 1, remainder %v": "나머지 >= 제수 %v: 빼기, 몫 비트 1, 나머지 %v",
	"remainder < divisor %v: restore, quotient bit 0":                 "나머지 < 제수 %v: 복원, 몫 비트 0",
	"division by zero":                                                "0으로 나눌 수 없습니다",
	"not a bit string":                                                "이진수 문자열이 아닙니다",
	"bit width mismatch":                                              "비트 폭이 맞지 않습니다",
	"bit width out of range":                                          "비트 폭이 범위를 벗어났습니다",
	"unknown operation":                                               "알 수 없는 연산",
	"operand %v: %v":                                                  "피연산자 %v: %v",

	// Operands
	"empty operand":                    "피연산자가 비어 있습니다",
	"$(%v) is not a valid expression": "$(%v)은(는) 올바른 식이 아닙니다",
	"'%v' is not a number":             "'%v'은(는) 숫자가 아닙니다",

	// Abacus
	"enter a valid number (-9999999 ~ 9999999)": "유효한 숫자를 입력하세요 (-9999999 ~ 9999999)",
	"rod out of range":                          "막대 번호가 범위를 벗어났습니다",
	"bead out of range":                         "알 번호가 범위를 벗어났습니다",
	"ones place":                                "일의 자리",
	"tens place":                                "십의 자리",
	"hundreds place":                            "백의 자리",
	"thousands place":                           "천의 자리",
	"ten-thousands place":                       "만의 자리",
	"hundred-thousands place":                   "십만의 자리",
	"millions place":                            "백만의 자리",
	"%v: %d (five bead: %v, one beads: %d)":     "%v: %d (오알: %v, 일알: %d개)",

	// Calculator
	"unknown input abacus":        "알 수 없는 입력 주판",
	"calculation: %v %v %v":       "계산: %v %v %v",
	"error: %v":                   "오류: %v",
	"result (binary): %v":         "결과 (이진수): %v",
	"result (decimal): %v":        "결과 (십진수): %v",
	"remainder (binary): %v":      "나머지 (이진수): %v",
	"remainder (decimal): %v":     "나머지 (십진수): %v",
	"Binary Abacus Calculator":    "이진수 주판 계산기",
	"export is not configured":    "내보내기가 설정되지 않았습니다",
	"saved %v":                    "저장됨: %v",
	"←/→ rod  ↑/↓ abacus  space toggle  + - * / operation  s steps  t theme  e export  q quit": "←/→ 막대  ↑/↓ 주판  스페이스 전환  + - * / 연산  s 과정  t 테마  e 내보내기  q 종료",

	// Classifier
	"point outside canvas":             "점이 캔버스 밖에 있습니다",
	"unknown class":                    "알 수 없는 클래스",
	"canvas must have a positive size": "캔버스 크기는 양수여야 합니다",
	"A: %d  B: %d":                     "A: %d개  B: %d개",
	"separated after %d passes":        "%d회 반복 후 분리됨",
	"not separated after %d passes":    "%d회 반복 후에도 분리되지 않음",

	// Theme
	"unknown theme":                 "알 수 없는 테마",
	"store path is required":        "저장소 경로가 필요합니다",
	"theme store is not configured": "테마 저장소가 설정되지 않았습니다",
	"create store directory %v":     "저장소 디렉터리 %v을(를) 만들 수 없습니다",
	"open store":                    "저장소를 열 수 없습니다",

	// Export
	"binary calculation result - %v":   "이진수 계산 결과 - %v",
	"calculation steps:":               "계산 과정:",
	"traditional abacus state - %v":    "전통 주판 상태 - %v",
	"current value: %v":                "현재 값: %v",
	"bead state per rod:":              "각 막대별 알 상태:",
	"how to read the abacus:":          "주판 읽는 법:",
	"- five bead active (%v): worth 5": "- 오알 활성 (%v): 5의 값",
	"- one bead active (%v): worth 1":  "- 일알 활성 (%v): 1의 값",
	"- inactive (%v): worth 0":         "- 비활성 (%v): 0의 값",

	// Configuration and requests
	"invalid configuration": "잘못된 설정",
	"read config %v":        "설정 파일 %v을(를) 읽을 수 없습니다",
	"config %v":             "설정 파일 %v",
	"logger":                "로거",
	"malformed request":     "잘못된 형식의 요청",
	"invalid request: %v":   "잘못된 요청: %v",

	// Command line
	"Binary calculator, abacus and classifier demos":  "이진수 계산기, 주판, 분류기 데모",
	"Calculate in fixed width binary":                 "고정 폭 이진수로 계산합니다",
	"Show numbers on the seven rod decimal abacus":    "7개 막대 십진 주판에 숫자를 표시합니다",
	"Draw the abacus showing n":                       "n을 표시한 주판을 그립니다",
	"Describe the beads of every rod showing n":       "n을 표시한 각 막대의 알을 설명합니다",
	"Train a linear classifier on labelled points":    "레이블이 붙은 점으로 선형 분류기를 학습합니다",
	"Show or change the saved theme":                  "저장된 테마를 보거나 바꿉니다",
	"Interactive binary abacus calculator":            "대화형 이진수 주판 계산기",
	"Serve the demos over HTTP":                       "HTTP로 데모를 제공합니다",
	"configuration file (default %v)":                 "설정 파일 (기본값 %v)",
	"bit width of the binary calculator":              "이진수 계산기의 비트 폭",
	"message language, as a BCP 47 tag":               "메시지 언어 (BCP 47 태그)",
	"directory of the theme store":                    "테마 저장소 디렉터리",
	"directory for exports":                           "내보내기 디렉터리",
	"verbose logging":                                 "자세한 로그",
	"export the result":                               "결과를 내보냅니다",
	"show every step of the calculation":              "계산의 모든 단계를 보여 줍니다",
	"seed of the initial weights (0: from the clock)": "초기 가중치의 시드 (0: 시계 사용)",
	"listen address, host:port":                       "수신 주소, host:port",
	"unknown action":                                  "알 수 없는 동작",
	"'%v' is not a point: expected x,y,label":         "'%v'은(는) 점이 아닙니다: x,y,레이블 형식이어야 합니다",
	"weights: %v, %v bias: %v":                        "가중치: %v, %v 편향: %v",
	"boundary: (%v, %v) - (%v, %v)":                   "경계: (%v, %v) - (%v, %v)",
	"(%v, %v) %v: classified %v":                      "(%v, %v) %v: %v(으)로 분류",
	"Apply add, subtract, multiply or divide to two operands. Operands are bit strings, prefixed literals (0x1f) or $(expressions).": "두 피연산자에 덧셈, 뺄셈, 곱셈, 나눗셈을 적용합니다. 피연산자는 이진수 문자열, 접두사가 붙은 리터럴(0x1f) 또는 $(식)입니다.",
	"Points are in canvas coordinates, labelled A or B. The weights, bias and decision boundary are printed; --save writes the plot.": "점은 캔버스 좌표이며 A 또는 B 레이블을 가집니다. 가중치, 편향, 결정 경계를 출력하며 --save는 그림을 저장합니다.",
}

func registerKorean() {
	for key, msg := range korean {
		message.SetString(language.Korean, key, msg)
	}
}
