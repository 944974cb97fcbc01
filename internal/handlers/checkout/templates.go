package checkout

import "html/template"

var (
	checkoutTmpl = template.Must(template.New("checkout").Parse(checkoutTemplate))
	redirectTmpl = template.Must(template.New("redirect").Parse(redirectTemplate))
	receiptTmpl  = template.Must(template.New("receipt").Parse(receiptTemplate))
	failureTmpl  = template.Must(template.New("failure").Parse(failureTemplate))
)

// checkoutTemplate is the demo storefront page.
const checkoutTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Checkout</title>
    <style>
        body {
            font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif;
            max-width: 480px;
            margin: 50px auto;
            padding: 20px;
            background-color: #f5f5f5;
        }
        .card {
            background: white;
            padding: 32px;
            border-radius: 8px;
            box-shadow: 0 2px 4px rgba(0,0,0,0.1);
        }
        h1 { font-size: 20px; }
        label { display: block; margin-top: 14px; font-weight: 600; color: #374151; }
        input {
            width: 100%;
            padding: 10px;
            margin-top: 4px;
            border: 1px solid #d1d5db;
            border-radius: 6px;
            box-sizing: border-box;
        }
        button {
            margin-top: 24px;
            width: 100%;
            padding: 12px;
            background-color: #3b82f6;
            color: white;
            font-weight: 600;
            border: none;
            border-radius: 6px;
            cursor: pointer;
        }
        button:hover { background-color: #2563eb; }
    </style>
</head>
<body>
    <div class="card">
        <h1>YagoutPay Checkout</h1>
        <form method="POST" action="/pay">
            <label>Amount (ETB)
                <input name="amount" value="100" required>
            </label>
            <label>Name
                <input name="cust_name" placeholder="Full name">
            </label>
            <label>Email
                <input name="email_id" type="email" placeholder="you@example.com" required>
            </label>
            <label>Mobile
                <input name="mobile_no" placeholder="09XXXXXXXX" required>
            </label>
            <button type="submit">Pay with YagoutPay</button>
        </form>
    </div>
</body>
</html>
`

// redirectTemplate renders the auto-submitting gateway form. The hidden form
// carries exactly the three protocol fields the gateway expects.
const redirectTemplate = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Redirecting to Payment Gateway</title>
    <style>
        body {
            background: linear-gradient(135deg, #667eea 0%, #764ba2 100%);
            font-family: Arial, sans-serif;
            display: flex;
            justify-content: center;
            align-items: center;
            min-height: 100vh;
            margin: 0;
        }
        .loading-container {
            background: white;
            border-radius: 15px;
            padding: 40px;
            text-align: center;
            box-shadow: 0 20px 40px rgba(0,0,0,0.1);
            max-width: 400px;
        }
        .spinner {
            border: 4px solid #f3f3f3;
            border-top: 4px solid #667eea;
            border-radius: 50%;
            width: 50px;
            height: 50px;
            animation: spin 1s linear infinite;
            margin: 0 auto 20px;
        }
        @keyframes spin {
            0% { transform: rotate(0deg); }
            100% { transform: rotate(360deg); }
        }
        .loading-text { color: #333; font-size: 18px; font-weight: 600; margin-bottom: 10px; }
        .loading-subtext { color: #666; font-size: 14px; }
    </style>
</head>
<body>
    <div class="loading-container">
        <div class="spinner"></div>
        <div class="loading-text">Redirecting to Payment Gateway</div>
        <div class="loading-subtext">Please wait while we process your request...</div>
    </div>

    <form name="paymentForm" method="POST" enctype="application/x-www-form-urlencoded" action="{{.PostURL}}" style="display: none;">
        <input name="me_id" value="{{.MerchantID}}" type="hidden">
        <input name="merchant_request" value="{{.MerchantRequest}}" type="hidden">
        <input name="hash" value="{{.Hash}}" type="hidden">
    </form>
    <noscript><p>JavaScript is disabled. Submit the form to continue.</p></noscript>
    <script>
        setTimeout(function() {
            document.forms["paymentForm"].submit();
        }, 1500);
    </script>
</body>
</html>
`

// receiptTemplate renders the post-payment receipt page.
const receiptTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Payment Successful</title>
    <style>
        body {
            font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif;
            max-width: 600px;
            margin: 50px auto;
            padding: 20px;
            background-color: #f5f5f5;
        }
        .receipt {
            background: white;
            padding: 40px;
            border-radius: 8px;
            box-shadow: 0 2px 4px rgba(0,0,0,0.1);
            text-align: center;
        }
        .icon { font-size: 64px; color: #10b981; }
        .status { font-size: 24px; font-weight: bold; color: #10b981; margin: 20px 0; }
        .amount { font-size: 32px; font-weight: bold; color: #111827; margin: 20px 0; }
        .detail-row {
            display: flex;
            justify-content: space-between;
            margin: 12px 0;
            border-bottom: 1px solid #e5e7eb;
            padding-bottom: 8px;
        }
        .detail-label { font-weight: 600; color: #6b7280; }
        .detail-value { color: #111827; }
        .footer { margin-top: 30px; color: #6b7280; font-size: 14px; }
    </style>
</head>
<body>
    <div class="receipt">
        <div class="icon">&#10003;</div>
        <div class="status">Payment Successful</div>
        <div class="amount">{{.Amount}} {{.Currency}}</div>
        <div class="detail-row">
            <span class="detail-label">Order Number</span>
            <span class="detail-value">{{.OrderNo}}</span>
        </div>
        <div class="detail-row">
            <span class="detail-label">Status</span>
            <span class="detail-value">{{.GatewayStatus}}</span>
        </div>
        <div class="footer">Thank you for your payment!</div>
    </div>
</body>
</html>
`

// failureTemplate renders the generic failure page. ReasonCode is coarse on
// purpose: verification details never reach the browser.
const failureTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Payment Failed</title>
    <style>
        body {
            font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif;
            max-width: 600px;
            margin: 50px auto;
            padding: 20px;
            background-color: #f5f5f5;
        }
        .error-page {
            background: white;
            padding: 40px;
            border-radius: 8px;
            box-shadow: 0 2px 4px rgba(0,0,0,0.1);
            text-align: center;
        }
        .icon { font-size: 64px; color: #ef4444; }
        h1 { color: #ef4444; }
        .reason {
            background-color: #fef2f2;
            border: 1px solid #fecaca;
            padding: 12px;
            border-radius: 6px;
            margin: 20px 0;
            color: #991b1b;
            font-family: monospace;
        }
        .button {
            display: inline-block;
            padding: 12px 24px;
            background-color: #3b82f6;
            color: white;
            text-decoration: none;
            border-radius: 6px;
            margin-top: 20px;
            font-weight: 500;
        }
        .button:hover { background-color: #2563eb; }
    </style>
</head>
<body>
    <div class="error-page">
        <div class="icon">&#9888;</div>
        <h1>Payment Failed</h1>
        <p>Your payment could not be completed.</p>
        <div class="reason">{{.ReasonCode}}</div>
        <a href="/" class="button">Try Again</a>
    </div>
</body>
</html>
`
