package layouts

// stylesheet reproduces the login screen's look. Nothing depends on it
// beyond appearance.
const stylesheet = `
body { margin: 0; font-family: system-ui, sans-serif; }
.flash { padding: 10px; text-align: center; }
.flash-success { background: #e6f4ea; color: #1e6b34; }
.lf-container { display: flex; flex-direction: column; justify-content: center; align-items: center; height: 100vh; }
.lf-form { padding: 30px; border-radius: 12px; box-shadow: 0 6px 20px rgba(0, 0, 0, 0.15); width: 400px; text-align: center; }
.lf-title { margin-bottom: 20px; font-size: 24px; font-weight: 600; color: #444; display: flex; align-items: center; justify-content: center; }
.lf-title svg { vertical-align: middle; margin-right: 8px; }
.lf-input { width: 90%; padding: 12px; border: 2px solid #ddd; border-radius: 6px; font-size: 16px; color: #333; margin-bottom: 15px; transition: border-color 0.3s; }
.lf-error { color: red; font-size: 14px; margin: -10px 0 15px; }
.lf-button { width: 100%; padding: 15px; background-color: #1E90FF; color: #fff; border: none; border-radius: 6px; cursor: pointer; font-size: 16px; transition: background-color 0.3s; }
.lf-gmail { width: 100%; padding: 15px; background-color: #FFFFFF; color: #333; border: 1px solid #ddd; border-radius: 6px; cursor: pointer; font-size: 16px; display: flex; align-items: center; justify-content: center; margin-top: 15px; }
.lf-gmail svg { margin-right: 8px; }
.lf-forgot { margin-bottom: 15px; text-align: right; }
.lf-forgot a { font-size: 14px; }
.lf-link { color: #1E90FF; text-decoration: none; }
.lf-no-account { margin-top: 20px; font-size: 14px; color: #555; }
.lf-message { margin-top: 15px; color: red; }
.lf-home { max-width: 600px; margin: 80px auto; text-align: center; }
`
