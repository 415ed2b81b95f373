package payload_test

import (
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/WeShipHQ/panda-monopoly-sub001/internal/http/payload"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("AuthRequest", func() {
	When("both fields are set", func() {
		It("should validate", func() {
			req := payload.AuthRequest{Username: "operator", Password: "secret"}
			Expect(req.Validate()).To(Succeed())
		})
	})

	When("the username is missing", func() {
		It("should fail validation", func() {
			req := payload.AuthRequest{Password: "secret"}
			Expect(req.Validate()).To(HaveOccurred())
		})
	})

	When("the password is missing", func() {
		It("should fail validation", func() {
			req := payload.AuthRequest{Username: "operator"}
			Expect(req.Validate()).To(HaveOccurred())
		})
	})

	It("should map onto the core message", func() {
		req := payload.AuthRequest{Username: "operator", Password: "secret"}
		msg := req.ToCoreAuthMessage()
		Expect(msg.Username).To(Equal("operator"))
		Expect(msg.Password).To(Equal("secret"))
	})
})

var _ = Describe("PubkeyParam", func() {
	When("the value is a base58 public key", func() {
		It("should validate", func() {
			param := payload.PubkeyParam{Pubkey: "4Nd1mBQtrMJVYVfKf2PJy9NZUZdTAsp7D4xWLs4gDB4T"}
			Expect(param.Validate()).To(Succeed())
		})
	})

	When("the value is empty", func() {
		It("should fail validation", func() {
			param := payload.PubkeyParam{}
			Expect(param.Validate()).To(HaveOccurred())
		})
	})

	When("the value carries characters outside the base58 alphabet", func() {
		It("should fail validation", func() {
			for _, bad := range []string{
				"0000000000000000000000000000000000",
				"IIIIIIIIIIIIIIIIIIIIIIIIIIIIIIIIII",
				"not-a-pubkey",
				strings.Repeat("A", 45),
			} {
				param := payload.PubkeyParam{Pubkey: bad}
				Expect(param.Validate()).To(HaveOccurred(), bad)
			}
		})
	})
})

var _ = Describe("DecodeValidator", func() {
	var dv payload.DecodeValidator

	newRequest := func(body string) *http.Request {
		req := httptest.NewRequest("POST", "/monopoly/authenticate", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		return req
	}

	When("the payload is well formed", func() {
		It("should decode and validate", func() {
			var auth payload.AuthRequest
			err := dv.DecodeAndValidateJSONPayload(newRequest(`{"username":"operator","password":"secret"}`), &auth)
			Expect(err).NotTo(HaveOccurred())
			Expect(auth.Username).To(Equal("operator"))
		})
	})

	When("the payload carries unknown fields", func() {
		It("should reject it", func() {
			var auth payload.AuthRequest
			err := dv.DecodeAndValidateJSONPayload(newRequest(`{"username":"operator","password":"secret","role":"admin"}`), &auth)
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("decoding json payload"))
		})
	})

	When("the payload is not valid JSON", func() {
		It("should reject it", func() {
			var auth payload.AuthRequest
			err := dv.DecodeAndValidateJSONPayload(newRequest(`{"username":`), &auth)
			Expect(err).To(HaveOccurred())
		})
	})

	When("the decoded payload fails its own validation", func() {
		It("should surface the validation error", func() {
			var auth payload.AuthRequest
			err := dv.DecodeAndValidateJSONPayload(newRequest(`{"username":"operator"}`), &auth)
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("validating payload"))
		})
	})

	When("the target does not implement validation", func() {
		It("should only decode", func() {
			var target map[string]string
			err := dv.DecodeAndValidateJSONPayload(newRequest(`{"anything":"goes"}`), &target)
			Expect(err).NotTo(HaveOccurred())
			Expect(target["anything"]).To(Equal("goes"))
		})
	})
})
